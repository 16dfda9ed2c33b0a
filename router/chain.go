package router

import "github.com/dmitrymomot/dispatch/handler"

// newChain composes the middleware stages and the terminal handler into
// a single HandlerFunc driven by an index into the chain — one owned
// continuation closure per frame, so stack growth is bounded by the
// chain length.
//
// Short-circuit rule: once the context carries a response, no further
// stage runs. The check happens at stage entry and again inside every
// continuation, so a stage that attaches a response and then calls its
// continuation anyway (or resumes after a blocking call that did) still
// stops the chain at the right point. A response returned by a stage is
// attached to the context before unwinding, which makes the returned
// value and the attach-to-context shim indistinguishable to outer
// frames.
//
// Onion ordering: stage code before the continuation call runs
// outer-to-inner, code after it runs inner-to-outer as the call stack
// unwinds. Nothing here reorders frames, so post-continuation code runs
// in exact reverse registration order.
func newChain[C handler.Context](stages []handler.Middleware[C], terminal handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	var at func(i int) handler.HandlerFunc[C]
	at = func(i int) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if resp := ctx.Response(); resp != nil {
				return resp
			}
			if i == len(stages) {
				resp := terminal(ctx)
				if resp != nil {
					ctx.SetResponse(resp)
				}
				return resp
			}
			next := at(i + 1)
			resp := stages[i](ctx, func(c C) handler.Response {
				if early := c.Response(); early != nil {
					return early
				}
				return next(c)
			})
			if resp != nil {
				ctx.SetResponse(resp)
			}
			return resp
		}
	}
	return at(0)
}
