// Package router implements the request-dispatch core: a backtracking
// segment trie per HTTP method, a per-request context container, and a
// dispatcher that assembles and executes the middleware chain around
// the matched handler.
//
// # Routing
//
// Register routes before serving traffic; the trie is read-only once
// registration is done, so concurrent lookups need no locking:
//
//	r := router.NewRouter[*router.Context]()
//	r.Get("/users/me", meHandler)
//	r.Get("/users/:id", userHandler)
//	r.Get("/files/*path", fileHandler)
//
// Matching priority at every trie level is static, then param, then
// wildcard, with backtracking: "/users/me" hits the static route even
// though ":id" would also match, and a failed param subtree never
// leaks its binding. The trailing wildcard captures the rest of the
// path as a single value ("a/b/c.txt" for "/files/a/b/c.txt").
//
// Registration-time misuse — a wildcard that is not the last segment,
// or two different parameter names at the same position — panics with
// a sentinel error. Lookup failure is a plain boolean miss.
//
// # Dispatching
//
//	d := router.New(r,
//		router.WithBasePath[*router.Context]("/api"),
//		router.WithMiddleware(middleware.Logging[*router.Context]()),
//	)
//	http.ListenAndServe(":8080", d)
//
// Fetch resolves a request to a response artifact and is total: a miss
// becomes the configured not-found response, and a panic anywhere in
// the chain is recovered exactly once, wrapped in a PanicError and
// converted by the configured error handler. If every stage declines
// to produce a response, Fetch synthesizes a fallback rather than
// returning nil. ServeHTTP is the thin boundary adapter that renders
// the artifact.
//
// Middleware executes in the onion model: each stage receives the
// context and an explicit continuation, and the chain short-circuits
// as soon as a response exists. See the handler package for the
// contracts.
package router
