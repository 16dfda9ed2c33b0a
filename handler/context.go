package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Use router.Context for the default implementation, or provide a
// context factory to the dispatcher for custom types.
//
// A Context carries no ResponseWriter: the dispatch core operates on
// Response artifacts, and rendering belongs to the boundary adapter.
type Context interface {
	context.Context

	// Request returns the immutable inbound request.
	Request() *http.Request

	// Param returns the value of the URL parameter by key,
	// or "" when the route did not bind it.
	Param(key string) string

	// SetValue stores a request-scoped value in the context's state bag.
	// Stored values shadow the request context for Value lookups.
	SetValue(key, val any)

	// Response returns the response artifact attached to the context,
	// or nil when none has been produced yet. Once set, the artifact is
	// authoritative and later chain stages do not run.
	Response() Response

	// SetResponse attaches a response artifact to the context.
	SetResponse(resp Response)
}
