package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/dispatch/handler"
)

// Option configures a Dispatcher during creation.
type Option[C handler.Context] func(*Dispatcher[C])

// Config carries the dispatcher settings that are commonly supplied
// through the environment. Load it with the config package and apply
// it with WithConfig:
//
//	var cfg router.Config
//	config.MustLoad(&cfg)
//	d := router.New(r, router.WithConfig[*router.Context](cfg))
type Config struct {
	// BasePath is stripped from every request path before matching.
	BasePath string `env:"DISPATCH_BASE_PATH" envDefault:""`

	// StrictRouting is reserved for distinguishing "/users" from
	// "/users/" at match time. It is stored but not consulted yet.
	// TODO: honor StrictRouting in Find once trailing-slash behavior
	// becomes configurable per route.
	StrictRouting bool `env:"DISPATCH_STRICT_ROUTING" envDefault:"false"`
}

// WithConfig applies an environment-loadable Config.
func WithConfig[C handler.Context](cfg Config) Option[C] {
	return func(d *Dispatcher[C]) {
		d.basePath = cfg.BasePath
		d.strictRouting = cfg.StrictRouting
	}
}

// WithBasePath sets a prefix that is stripped from request paths before
// matching. Requests outside the prefix take the not-found branch.
func WithBasePath[C handler.Context](path string) Option[C] {
	return func(d *Dispatcher[C]) {
		d.basePath = path
	}
}

// WithStrictRouting sets the reserved strict-routing flag. The flag is
// currently inert; see Config.StrictRouting.
func WithStrictRouting[C handler.Context](strict bool) Option[C] {
	return func(d *Dispatcher[C]) {
		d.strictRouting = strict
	}
}

// WithMiddleware appends global middleware stages, executed in the
// order given.
func WithMiddleware[C handler.Context](middlewares ...handler.Middleware[C]) Option[C] {
	return func(d *Dispatcher[C]) {
		d.middlewares = append(d.middlewares, middlewares...)
	}
}

// WithErrorHandler overrides the default plain-text 500 error handler.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(d *Dispatcher[C]) {
		if h != nil {
			d.errorHandler = h
		}
	}
}

// WithNotFound overrides the default plain-text 404 handler.
func WithNotFound[C handler.Context](h handler.HandlerFunc[C]) Option[C] {
	return func(d *Dispatcher[C]) {
		if h != nil {
			d.notFound = h
		}
	}
}

// WithContextFactory sets a custom context factory. Required for any
// context type other than *Context.
func WithContextFactory[C handler.Context](f func(r *http.Request, params Params, env map[string]any) C) Option[C] {
	return func(d *Dispatcher[C]) {
		d.newContext = f
	}
}

// WithLogger sets the logger used for recovered panics and render
// failures. The default discards everything.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(d *Dispatcher[C]) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithEnv sets the default environment map handed to Fetch by the
// ServeHTTP adapter.
func WithEnv[C handler.Context](env map[string]any) Option[C] {
	return func(d *Dispatcher[C]) {
		d.env = env
	}
}
