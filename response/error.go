package response

import (
	"net/http"

	"github.com/dmitrymomot/dispatch/handler"
)

// Error returns a response artifact that propagates the given error to
// the dispatcher's error handler instead of writing anything itself.
// Useful when a middleware wants the configured error conversion to
// apply rather than crafting its own body.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
