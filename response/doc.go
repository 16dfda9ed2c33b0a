// Package response provides constructors for response artifacts: the
// deferred render closures handlers and middleware return instead of
// writing to the network themselves.
//
// Basic responses:
//
//	response.String("pong")
//	response.JSON(user)
//	response.JSONWithStatus(payload, http.StatusCreated)
//	response.NoContent()
//	response.Redirect("/login")
//
// Streaming responses honor the request context and flush per chunk,
// leaving drain pacing to the consumer of the stream:
//
//	response.SSE(events, response.WithEventName("tick"))
//	response.StreamJSON(items)
//
// Templ components render as HTML with the request's context:
//
//	response.Templ(views.Profile(user))
package response
