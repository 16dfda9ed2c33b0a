package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/dispatch/handler"
)

// knownMethods is the set of HTTP methods a trie may be registered for.
var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
	http.MethodPatch:   {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodConnect: {},
	http.MethodTrace:   {},
}

// Router owns one matching trie per HTTP method. Methods are fully
// independent: no structure or handlers are shared across them.
//
// The trie is built at registration time and is read-only afterwards.
// Concurrent Find calls against a finished trie need no locking;
// calling Handle concurrently with in-flight lookups is not supported —
// finish registration before serving traffic.
type Router[C handler.Context] struct {
	trees  map[string]*node[C]
	routes []Route
}

// Route describes a single registered route for introspection.
type Route struct {
	Method  string
	Pattern string
}

// Match is the result of a successful lookup: the registered handler
// plus the parameters bound while matching, in path order.
type Match[C handler.Context] struct {
	Handler handler.HandlerFunc[C]
	Params  Params
	Pattern string
}

// NewRouter creates an empty router.
func NewRouter[C handler.Context]() *Router[C] {
	return &Router[C]{trees: make(map[string]*node[C])}
}

// Handle registers a handler for the given method and pattern.
//
// Pattern syntax: literal segments match exactly; a ":name" segment
// binds one path segment under name; a trailing "*" or "*name" segment
// captures the remaining path as one value. A wildcard anywhere but the
// last position panics with ErrWildcardPosition, and registering a
// param segment at a position that already holds a differently-named
// param panics with ErrParamNameConflict. Re-registering the same
// (method, pattern) replaces the handler.
//
// A trailing slash is normalized away; the bare root "/" is its own
// registrable pattern.
func (r *Router[C]) Handle(method, pattern string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(fmt.Errorf("%w on %q", ErrNilHandler, pattern))
	}
	method = strings.ToUpper(method)
	if _, ok := knownMethods[method]; !ok {
		panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
	}
	if pattern == "" || pattern[0] != '/' {
		panic(fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern))
	}

	root := r.trees[method]
	if root == nil {
		root = &node[C]{}
		r.trees[method] = root
	}
	root.insert(pattern, splitPath(pattern), h)
	r.routes = append(r.routes, Route{Method: method, Pattern: pattern})
}

// Find resolves a path to a registered handler for the given method.
// It returns false when nothing matches; lookup failure is never an
// error condition and never panics.
func (r *Router[C]) Find(method, path string) (Match[C], bool) {
	root := r.trees[strings.ToUpper(method)]
	if root == nil {
		return Match[C]{}, false
	}
	var ps Params
	n := root.find(splitPath(path), &ps)
	if n == nil {
		return Match[C]{}, false
	}
	return Match[C]{Handler: n.handler, Params: ps, Pattern: n.pattern}, true
}

// Routes returns all registered routes in registration order.
func (r *Router[C]) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Get registers a handler for GET requests.
func (r *Router[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (r *Router[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (r *Router[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (r *Router[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (r *Router[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (r *Router[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (r *Router[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	r.Handle(http.MethodOptions, pattern, h)
}
