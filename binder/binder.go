package binder

import "net/http"

// Binder represents a function that binds HTTP request data to a Go
// value. It provides a unified interface for extracting data from the
// different parts of a request (JSON body, form data, query string)
// into strongly-typed structures.
type Binder func(r *http.Request, v any) error
