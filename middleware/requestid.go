package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dispatch/handler"
)

// requestIDContextKey is used as a key for storing the request ID in
// the context state bag.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID supplied by the client
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// Each request gets a UUID stored in the context state and echoed in
// the response headers.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The header is added by decorating the response
// artifact, so it applies whichever stage ends the chain.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx C, next handler.HandlerFunc[C]) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next(ctx)
		}

		var requestID string
		if cfg.UseExisting {
			requestID = ctx.Request().Header.Get(cfg.HeaderName)
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.SetValue(requestIDContextKey{}, requestID)

		resp := next(ctx)
		if resp == nil {
			return nil
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set(cfg.HeaderName, requestID)
			return resp(w, r)
		}
	}
}

// GetRequestID retrieves the request ID from the context.
// Returns the ID and a boolean indicating whether it was found.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
