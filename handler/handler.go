package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It is a deferred artifact: building one never touches the network,
// rendering happens once at the outer boundary. Rendering errors are
// handled by the dispatcher's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler with custom context support.
type HandlerFunc[C Context] func(ctx C) Response

// Middleware is one stage of the dispatch chain. Code before the call to
// next runs on the way in; code after it runs on the way out, in reverse
// stage order. A stage ends the chain early by returning a Response
// without calling next, or by attaching one to the context — the
// executor treats both uniformly, with the return value as the
// canonical signal.
type Middleware[C Context] func(ctx C, next HandlerFunc[C]) Response

// ErrorHandler converts a failure into a response artifact.
type ErrorHandler[C Context] func(ctx C, err error) Response
