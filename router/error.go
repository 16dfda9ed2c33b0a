package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/dispatch/handler"
	"github.com/dmitrymomot/dispatch/response"
)

var (
	// Registration errors. These surface as panics at the Handle call
	// site: a malformed route table is a programming error, not a
	// runtime condition.
	ErrWildcardPosition  = errors.New("wildcard segment must be last")
	ErrParamNameConflict = errors.New("conflicting parameter name")
	ErrInvalidMethod     = errors.New("invalid http method")
	ErrNilHandler        = errors.New("nil handler")
	ErrInvalidPattern    = errors.New("invalid route path pattern")

	// Dispatch errors.
	ErrNotFound         = errors.New("not found")
	ErrNoContextFactory = errors.New("no context factory provided")

	// ErrBodyConsumed reports a second decode attempt on a request body
	// that an earlier stage already consumed. Stages that hit it should
	// respond with a client error themselves; the dispatcher never
	// suppresses it.
	ErrBodyConsumed = errors.New("request body already consumed")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultNotFound is the not-found branch used when no override is configured.
func defaultNotFound[C handler.Context](ctx C) handler.Response {
	return response.StringWithStatus("404 page not found", http.StatusNotFound)
}

// defaultErrorHandler converts an unhandled dispatch failure into a
// plain-text response. The default form never leaks internal detail:
// the error text is only exposed when the error opted into a
// client-class status code via the statusCode interface.
func defaultErrorHandler[C handler.Context](ctx C, err error) handler.Response {
	if sc, ok := err.(statusCode); ok {
		return response.StringWithStatus(err.Error(), sc.StatusCode())
	}
	return response.StringWithStatus("500 internal server error", http.StatusInternalServerError)
}

// PanicError allows external error handlers to detect and handle panics.
// When a panic is recovered by the dispatcher, it is wrapped in an error
// that implements this interface, providing access to the original panic
// value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
