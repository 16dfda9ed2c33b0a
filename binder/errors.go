package binder

import "errors"

// Error variables define common binding failures. Callers should treat
// any of them as a client-error condition.
var (
	// ErrUnsupportedMediaType indicates the Content-Type header names a
	// media type the binder does not handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body contains invalid
	// JSON or does not match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates malformed urlencoded or multipart
	// form data.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToParseQuery indicates query parameter binding failed,
	// typically a type conversion error.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrMissingContentType indicates the request lacks a Content-Type
	// header when one is required.
	ErrMissingContentType = errors.New("missing content type")
)
