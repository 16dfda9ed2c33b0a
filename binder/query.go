package binder

import "net/http"

// Query creates a binder for URL query parameters. Fields bind through
// `query` struct tags with the same type support as Form. Binding the
// query never touches the request body.
func Query() Binder {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
