package router_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/handler"
	"github.com/dmitrymomot/dispatch/response"
	"github.com/dmitrymomot/dispatch/router"
)

func record[C handler.Context](t *testing.T, d *router.Dispatcher[C], method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	d.ServeHTTP(w, req)
	return w
}

func TestDispatcherFetch(t *testing.T) {
	t.Parallel()

	t.Run("resolves handler and params", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/users/:id", func(ctx *router.Context) handler.Response {
			return response.String("user " + ctx.Param("id"))
		})
		d := router.New(r)

		w := record(t, d, http.MethodGet, "/users/42")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user 42", w.Body.String())
	})

	t.Run("default not found", func(t *testing.T) {
		t.Parallel()

		d := router.New(router.NewRouter[*router.Context]())

		first := record(t, d, http.MethodGet, "/missing")
		second := record(t, d, http.MethodGet, "/missing")

		assert.Equal(t, http.StatusNotFound, first.Code)
		assert.Equal(t, "text/plain; charset=utf-8", first.Header().Get("Content-Type"))

		// Two misses on the same path are structurally identical.
		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, first.Header(), second.Header())
	})

	t.Run("custom not found handler", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		d := router.New(r, router.WithNotFound(func(ctx *router.Context) handler.Response {
			return response.JSONWithStatus(map[string]string{"error": "nope"}, http.StatusNotFound)
		}))

		w := record(t, d, http.MethodGet, "/missing")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"nope"}`, w.Body.String())
	})

	t.Run("fetch never returns nil", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		// Handler declines to produce a response.
		r.Get("/silent", func(ctx *router.Context) handler.Response {
			return nil
		})
		d := router.New(r)

		resp := d.Fetch(httptest.NewRequest(http.MethodGet, "/silent", nil), nil)
		require.NotNil(t, resp)

		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/silent", nil)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("env values reach the context", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/env", func(ctx *router.Context) handler.Response {
			v, _ := ctx.Env("region").(string)
			return response.String(v)
		})
		d := router.New(r)

		resp := d.Fetch(httptest.NewRequest(http.MethodGet, "/env", nil), map[string]any{"region": "eu-west-1"})
		w := httptest.NewRecorder()
		require.NoError(t, resp(w, httptest.NewRequest(http.MethodGet, "/env", nil)))
		assert.Equal(t, "eu-west-1", w.Body.String())
	})
}

func TestDispatcherBasePath(t *testing.T) {
	t.Parallel()

	newDispatcher := func() *router.Dispatcher[*router.Context] {
		r := router.NewRouter[*router.Context]()
		r.Get("/users", func(ctx *router.Context) handler.Response {
			return response.String("users")
		})
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.String("root")
		})
		return router.New(r, router.WithBasePath[*router.Context]("/api"))
	}

	t.Run("prefix is stripped before matching", func(t *testing.T) {
		t.Parallel()

		w := record(t, newDispatcher(), http.MethodGet, "/api/users")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "users", w.Body.String())
	})

	t.Run("bare prefix resolves to root", func(t *testing.T) {
		t.Parallel()

		w := record(t, newDispatcher(), http.MethodGet, "/api")
		assert.Equal(t, "root", w.Body.String())
	})

	t.Run("outside prefix is not found even when unprefixed form matches", func(t *testing.T) {
		t.Parallel()

		w := record(t, newDispatcher(), http.MethodGet, "/users")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("prefix match respects segment boundary", func(t *testing.T) {
		t.Parallel()

		w := record(t, newDispatcher(), http.MethodGet, "/apiv2/users")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDispatcherPanicRecovery(t *testing.T) {
	t.Parallel()

	t.Run("panic converts to default 500 without leaking detail", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/boom", func(ctx *router.Context) handler.Response {
			panic("secret database credential")
		})
		d := router.New(r, router.WithLogger[*router.Context](slog.New(slog.NewTextHandler(io.Discard, nil))))

		w := record(t, d, http.MethodGet, "/boom")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("error handler is invoked exactly once and sees the panic", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("kaboom")
		r := router.NewRouter[*router.Context]()
		r.Get("/boom", func(ctx *router.Context) handler.Response {
			panic(sentinel)
		})

		var calls int
		var caught error
		d := router.New(r, router.WithErrorHandler(func(ctx *router.Context, err error) handler.Response {
			calls++
			caught = err
			return response.StringWithStatus("handled", http.StatusBadGateway)
		}))

		w := record(t, d, http.MethodGet, "/boom")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "handled", w.Body.String())
		assert.Equal(t, 1, calls)

		var pe router.PanicError
		require.ErrorAs(t, caught, &pe)
		assert.Equal(t, sentinel, pe.Value())
		assert.NotEmpty(t, pe.Stack())
		assert.ErrorIs(t, caught, sentinel)
	})

	t.Run("middleware panic recovers too", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/ok", func(ctx *router.Context) handler.Response {
			return response.String("never")
		})
		d := router.New(r, router.WithMiddleware(
			func(ctx *router.Context, next handler.HandlerFunc[*router.Context]) handler.Response {
				panic("middleware fault")
			},
		))

		w := record(t, d, http.MethodGet, "/ok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDispatcherRenderError(t *testing.T) {
	t.Parallel()

	t.Run("clean render failure converts through error handler", func(t *testing.T) {
		t.Parallel()

		renderErr := errors.New("render failed")
		r := router.NewRouter[*router.Context]()
		r.Get("/bad", func(ctx *router.Context) handler.Response {
			return response.Error(renderErr)
		})

		var caught error
		d := router.New(r, router.WithErrorHandler(func(ctx *router.Context, err error) handler.Response {
			caught = err
			return response.StringWithStatus("converted", http.StatusInternalServerError)
		}))

		w := record(t, d, http.MethodGet, "/bad")
		assert.Equal(t, "converted", w.Body.String())
		assert.ErrorIs(t, caught, renderErr)
	})

	t.Run("partial write only logs", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/partial", func(ctx *router.Context) handler.Response {
			return func(w http.ResponseWriter, req *http.Request) error {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("partial"))
				return errors.New("stream broke")
			}
		})
		d := router.New(r)

		w := record(t, d, http.MethodGet, "/partial")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})
}

func TestDispatcherWithConfig(t *testing.T) {
	t.Parallel()

	r := router.NewRouter[*router.Context]()
	r.Get("/users", func(ctx *router.Context) handler.Response {
		return response.String("users")
	})
	d := router.New(r, router.WithConfig[*router.Context](router.Config{
		BasePath:      "/v1",
		StrictRouting: true, // stored but inert
	}))

	w := record(t, d, http.MethodGet, "/v1/users")
	assert.Equal(t, "users", w.Body.String())

	w = record(t, d, http.MethodGet, "/users")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDispatcherCustomContextFactory(t *testing.T) {
	t.Parallel()

	type tenantContext struct {
		*router.Context
		tenant string
	}

	r := router.NewRouter[*tenantContext]()
	r.Get("/whoami", func(ctx *tenantContext) handler.Response {
		return response.String(ctx.tenant)
	})
	d := router.New(r, router.WithContextFactory(
		func(req *http.Request, params router.Params, env map[string]any) *tenantContext {
			return &tenantContext{
				Context: router.NewContext(req, params, env),
				tenant:  req.Header.Get("X-Tenant"),
			}
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Tenant", "acme")
	w := httptest.NewRecorder()
	d.ServeHTTP(w, req)

	assert.Equal(t, "acme", w.Body.String())
}

func TestDispatcherMissingContextFactory(t *testing.T) {
	t.Parallel()

	type customContext struct {
		*router.Context
	}

	r := router.NewRouter[*customContext]()
	r.Get("/x", func(ctx *customContext) handler.Response {
		return response.String("x")
	})
	d := router.New(r)

	// Without a factory the dispatcher cannot build a custom context;
	// the resulting panic is recovered into the error response.
	w := record(t, d, http.MethodGet, "/x")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
