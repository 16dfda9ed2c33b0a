package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/dmitrymomot/dispatch/handler"
	"github.com/dmitrymomot/dispatch/logger"
	"github.com/dmitrymomot/dispatch/response"
)

// Dispatcher is the orchestration entry point: it resolves base-path
// stripping, performs the route lookup, assembles the middleware chain
// around the matched handler, and executes it with short-circuit
// semantics. Fetch always produces a response; no failure escapes to
// the caller.
//
// The Router is passed in explicitly at construction. There is no
// process-wide registry: two dispatchers over two routers are fully
// independent.
type Dispatcher[C handler.Context] struct {
	router        *Router[C]
	middlewares   []handler.Middleware[C]
	errorHandler  handler.ErrorHandler[C]
	notFound      handler.HandlerFunc[C]
	newContext    func(r *http.Request, params Params, env map[string]any) C
	logger        *slog.Logger
	basePath      string
	strictRouting bool // reserved, not consulted yet
	env           map[string]any
}

// New creates a dispatcher over the given router.
func New[C handler.Context](r *Router[C], opts ...Option[C]) *Dispatcher[C] {
	d := &Dispatcher[C]{
		router:       r,
		errorHandler: defaultErrorHandler[C],
		notFound:     defaultNotFound[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // no-op logger by default
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.newContext == nil {
		d.newContext = func(r *http.Request, params Params, env map[string]any) C {
			// Only the default *Context type works without a factory;
			// custom context types must provide one.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(r, params, env)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return d
}

// Fetch dispatches one request and returns its response artifact. It is
// total: route misses become the not-found response, and any panic out
// of a middleware or handler is recovered exactly once, wrapped in a
// PanicError, logged, and converted through the configured error
// handler. The env map is exposed to stages via the context.
func (d *Dispatcher[C]) Fetch(r *http.Request, env map[string]any) (resp handler.Response) {
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			d.logger.Error("panic during dispatch",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				slog.Any("value", panicErr.value),
				slog.String("stack", string(panicErr.stack)),
			)
			resp = d.convertError(r, env, panicErr)
		}
	}()

	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}

	// Base-path gate: a request outside the prefix goes straight to the
	// not-found branch even when the un-prefixed form would match.
	if d.basePath != "" {
		stripped, ok := stripBasePath(path, d.basePath)
		if !ok {
			ctx := d.newContext(r, Params{}, env)
			return d.safeResponse(ctx, d.notFound(ctx))
		}
		path = stripped
	}

	m, found := d.router.Find(r.Method, path)
	if !found {
		ctx := d.newContext(r, Params{}, env)
		return d.safeResponse(ctx, d.notFound(ctx))
	}

	ctx := d.newContext(r, m.Params, env)

	// Terminal stage: run the matched handler and attach its result so
	// the short-circuit rule sees it like any other response.
	chain := newChain(d.middlewares, m.Handler)

	out := chain(ctx)
	if out == nil {
		out = ctx.Response()
	}
	return d.safeResponse(ctx, out)
}

// safeResponse upholds the hard invariant that a dispatch always yields
// a response artifact, even when every stage declined to produce one.
func (d *Dispatcher[C]) safeResponse(ctx C, resp handler.Response) handler.Response {
	if resp != nil {
		return resp
	}
	if attached := ctx.Response(); attached != nil {
		return attached
	}
	return fallbackResponse()
}

// convertError runs the configured error handler inside its own
// recover, so a faulty error handler (or a context factory that cannot
// build an error context) still resolves to a response.
func (d *Dispatcher[C]) convertError(r *http.Request, env map[string]any, err error) (resp handler.Response) {
	defer func() {
		if recover() != nil {
			resp = fallbackResponse()
		}
	}()
	ctx := d.newContext(r, Params{}, env)
	resp = d.errorHandler(ctx, err)
	if resp == nil {
		resp = fallbackResponse()
	}
	return resp
}

func fallbackResponse() handler.Response {
	return response.StringWithStatus("no response produced", http.StatusInternalServerError)
}

// ServeHTTP adapts the dispatcher to the standard http.Handler
// interface: it renders the artifact returned by Fetch. A render error
// is converted through the error handler unless bytes already went out,
// in which case it is only logged.
func (d *Dispatcher[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	resp := d.Fetch(r, d.env)
	if err := resp(ww, r); err != nil {
		if ww.Written() {
			d.logger.Error("render error after response written",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Status(ww.Status()),
				logger.Error(err),
			)
			return
		}
		errResp := d.convertError(r, d.env, err)
		if rerr := errResp(ww, r); rerr != nil && !ww.Written() {
			http.Error(ww, "500 internal server error", http.StatusInternalServerError)
		}
	}
}

// stripBasePath removes prefix from path on a segment boundary. The
// second result is false when path is outside the prefix. An empty
// remainder becomes "/".
func stripBasePath(path, prefix string) (string, bool) {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return path, true
	}
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := path[len(prefix):]
	if rest == "" {
		return "/", true
	}
	if rest[0] != '/' {
		// "/apiv2" must not satisfy the "/api" prefix.
		return "", false
	}
	return rest, true
}
