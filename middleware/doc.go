// Package middleware provides generic dispatch-chain stages expressed
// through the continuation contract: each stage receives the context
// and an explicit next function, runs its pre-continuation code on the
// way in, and its post-continuation code on the way out.
//
//	d := router.New(r,
//		router.WithMiddleware(
//			middleware.RequestID[*router.Context](),
//			middleware.Logging[*router.Context](),
//		),
//	)
//
// All middlewares follow the same shape: a Config struct with an
// optional Skip predicate, an XWithConfig constructor that fills in
// defaults, and a bare X constructor for the common case. Stages are
// generic over handler.Context, so they work with custom context types.
package middleware
