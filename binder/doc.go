// Package binder extracts request data into Go values: JSON bodies,
// form fields, query parameters, and raw text.
//
//	var req CreateUserRequest
//	if err := binder.JSON()(r, &req); err != nil {
//		// client error
//	}
//
// Body-reading binders consume the request body; the router.Context
// decode-once accessors wrap them and report a second attempt as
// router.ErrBodyConsumed. Binding failures wrap the package's sentinel
// errors, so callers can classify them with errors.Is.
package binder
