// Package handler defines the contracts shared by the dispatch engine:
// response artifacts, type-safe handlers, the continuation middleware
// form, and the request context interface.
//
// # Core Types
//
//	import "github.com/dmitrymomot/dispatch/handler"
//
//	// Response function renders HTTP responses
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Middleware stage with an explicit continuation
//	type Middleware[C Context] func(ctx C, next HandlerFunc[C]) Response
//
//	// Error handling function
//	type ErrorHandler[C Context] func(ctx C, err error) Response
//
// # Response Artifacts
//
// Handlers do not write to the network. They return a Response, a
// closure that performs the actual rendering when the dispatcher's
// boundary adapter invokes it. This keeps handlers and middleware
// testable without a ResponseWriter and lets middleware decorate a
// response (headers, cookies) before any byte is written:
//
//	func getUserHandler(ctx handler.Context) handler.Response {
//		id := ctx.Param("id")
//		return response.JSON(map[string]string{"id": id})
//	}
//
// # Middleware
//
// Middleware receives the context and an explicit continuation. Code
// before the next call runs on the way in, code after it runs on the
// way out, in reverse stage order:
//
//	func timing[C handler.Context](ctx C, next handler.HandlerFunc[C]) handler.Response {
//		start := time.Now()
//		resp := next(ctx)
//		slog.Info("handled", "duration", time.Since(start))
//		return resp
//	}
//
// Returning a Response without calling next ends the chain early; no
// later stage and no handler runs. Attaching a response to the context
// has the same effect and is recognized by the executor, but returning
// the value is the canonical signal.
//
// # Context Interface
//
// The Context interface extends Go's standard context.Context with the
// dispatch-scoped state of one request:
//
//	type Context interface {
//		context.Context
//		Request() *http.Request
//		Param(key string) string
//		SetValue(key, val any)
//		Response() Response
//		SetResponse(resp Response)
//	}
//
// The router package provides the default implementation; custom
// context types plug in through the dispatcher's context factory.
package handler
