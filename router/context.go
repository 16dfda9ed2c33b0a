package router

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/dispatch/binder"
	"github.com/dmitrymomot/dispatch/handler"
)

// Context is the default per-request context implementation. The
// dispatcher creates exactly one per inbound request and discards it
// after the response is handed back; contexts are never pooled or
// reused. Standard context.Context methods delegate to the request's
// context.
type Context struct {
	r      *http.Request
	params Params
	env    map[string]any
	state  map[any]any
	resp   handler.Response

	query        url.Values // parsed lazily, cached
	bodyConsumed bool
}

// NewContext creates a context for the given request. The dispatcher
// calls this through its context factory; tests may call it directly.
func NewContext(r *http.Request, params Params, env map[string]any) *Context {
	return &Context{r: r, params: params, env: env}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns a value stored with SetValue, falling back to the
// request's context when the state bag has no entry for key.
func (c *Context) Value(key any) any {
	if v, ok := c.state[key]; ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the immutable inbound request.
func (c *Context) Request() *http.Request {
	return c.r
}

// Param returns the value of the URL parameter by key.
func (c *Context) Param(key string) string {
	return c.params.Get(key)
}

// Params returns all route parameters bound for this request.
func (c *Context) Params() Params {
	return c.params
}

// SetValue stores a request-scoped value in the state bag.
func (c *Context) SetValue(key, val any) {
	if c.state == nil {
		c.state = make(map[any]any)
	}
	c.state[key] = val
}

// Env returns a value from the dispatch environment handed to Fetch,
// or nil when the key is absent.
func (c *Context) Env(key string) any {
	if c.env == nil {
		return nil
	}
	return c.env[key]
}

// Response returns the response artifact attached to this context, or
// nil when none has been produced yet.
func (c *Context) Response() handler.Response {
	return c.resp
}

// SetResponse attaches a response artifact. Once set it is
// authoritative: the chain executor stops running later stages.
func (c *Context) SetResponse(resp handler.Response) {
	c.resp = resp
}

// Header returns the first value of the named request header.
func (c *Context) Header(key string) string {
	return c.r.Header.Get(key)
}

// Query returns the first value of the named query parameter. The
// query string is parsed on first access and cached.
func (c *Context) Query(key string) string {
	return c.queryValues().Get(key)
}

// QueryAll returns every value of the named query parameter, in the
// order they appear in the query string.
func (c *Context) QueryAll(key string) []string {
	return c.queryValues()[key]
}

func (c *Context) queryValues() url.Values {
	if c.query == nil {
		c.query = c.r.URL.Query()
	}
	return c.query
}

// Bind decodes the JSON request body into v. The body is consumed: a
// second decode attempt through any body accessor returns
// ErrBodyConsumed. Stages that need the payload more than once should
// decode it once and cache the result in the state bag.
func (c *Context) Bind(v any) error {
	if err := c.consumeBody(); err != nil {
		return err
	}
	return binder.JSON()(c.r, v)
}

// BindForm decodes urlencoded or multipart form data into v using
// `form` struct tags. The body is consumed; see Bind.
func (c *Context) BindForm(v any) error {
	if err := c.consumeBody(); err != nil {
		return err
	}
	return binder.Form()(c.r, v)
}

// Form parses the request body as form data and returns the fields.
// The body is consumed; see Bind.
func (c *Context) Form() (url.Values, error) {
	if err := c.consumeBody(); err != nil {
		return nil, err
	}
	if err := c.r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %v", binder.ErrFailedToParseForm, err)
	}
	return c.r.PostForm, nil
}

// Text reads the request body as plain text. The body is consumed;
// see Bind.
func (c *Context) Text() (string, error) {
	if err := c.consumeBody(); err != nil {
		return "", err
	}
	return binder.Text(c.r)
}

func (c *Context) consumeBody() error {
	if c.bodyConsumed {
		return ErrBodyConsumed
	}
	c.bodyConsumed = true
	return nil
}
