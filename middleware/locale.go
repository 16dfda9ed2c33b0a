package middleware

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/dispatch/handler"
)

// localeContextKey is used as a key for storing the negotiated locale
// in the context state bag.
type localeContextKey struct{}

// LocaleConfig configures the locale negotiation middleware.
type LocaleConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Supported lists the languages the application serves. The first
	// entry is the fallback (default: English only).
	Supported []language.Tag
	// QueryParam optionally names a query parameter that overrides the
	// Accept-Language header (e.g. "lang").
	QueryParam string
}

// Locale creates a locale middleware that negotiates against the given
// supported languages.
func Locale[C handler.Context](supported ...language.Tag) handler.Middleware[C] {
	return LocaleWithConfig[C](LocaleConfig{Supported: supported})
}

// LocaleWithConfig creates a locale negotiation middleware with custom
// configuration. The matched language tag is stored in the context
// state and available via GetLocale.
func LocaleWithConfig[C handler.Context](cfg LocaleConfig) handler.Middleware[C] {
	if len(cfg.Supported) == 0 {
		cfg.Supported = []language.Tag{language.English}
	}
	matcher := language.NewMatcher(cfg.Supported)

	return func(ctx C, next handler.HandlerFunc[C]) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next(ctx)
		}

		r := ctx.Request()
		accept := r.Header.Get("Accept-Language")
		if cfg.QueryParam != "" {
			if lang := r.URL.Query().Get(cfg.QueryParam); lang != "" {
				accept = lang
			}
		}

		// ParseAcceptLanguage tolerates garbage; the matcher falls back
		// to the first supported tag when nothing matches.
		desired, _, _ := language.ParseAcceptLanguage(accept)
		tag, _, _ := matcher.Match(desired...)

		ctx.SetValue(localeContextKey{}, tag)

		return next(ctx)
	}
}

// GetLocale retrieves the negotiated language tag from the context.
// Returns the tag and a boolean indicating whether negotiation ran.
func GetLocale(ctx handler.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(localeContextKey{}).(language.Tag)
	return tag, ok
}
