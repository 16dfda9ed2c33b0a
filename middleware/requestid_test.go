package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/handler"
	"github.com/dmitrymomot/dispatch/middleware"
	"github.com/dmitrymomot/dispatch/response"
	"github.com/dmitrymomot/dispatch/router"
)

func dispatch(t *testing.T, mw handler.Middleware[*router.Context], h handler.HandlerFunc[*router.Context], req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	r := router.NewRouter[*router.Context]()
	r.Handle(req.Method, req.URL.Path, h)
	d := router.New(r, router.WithMiddleware(mw))

	w := httptest.NewRecorder()
	d.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid and sets header", func(t *testing.T) {
		t.Parallel()

		var seen string
		h := func(ctx *router.Context) handler.Response {
			seen, _ = middleware.GetRequestID(ctx)
			return response.String("ok")
		}

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := dispatch(t, middleware.RequestID[*router.Context](), h, req)

		require.NotEmpty(t, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err, "generated id is a valid uuid")
		assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses client id when configured", func(t *testing.T) {
		t.Parallel()

		h := func(ctx *router.Context) handler.Response {
			return response.String("ok")
		}

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "client-supplied")

		mw := middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{UseExisting: true})
		w := dispatch(t, mw, h, req)

		assert.Equal(t, "client-supplied", w.Header().Get("X-Request-ID"))
	})

	t.Run("ignores client id by default", func(t *testing.T) {
		t.Parallel()

		h := func(ctx *router.Context) handler.Response {
			return response.String("ok")
		}

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "client-supplied")

		w := dispatch(t, middleware.RequestID[*router.Context](), h, req)
		assert.NotEqual(t, "client-supplied", w.Header().Get("X-Request-ID"))
	})

	t.Run("custom header and generator", func(t *testing.T) {
		t.Parallel()

		h := func(ctx *router.Context) handler.Response {
			return response.String("ok")
		}

		mw := middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			HeaderName: "X-Trace-ID",
			Generator:  func() string { return "fixed" },
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := dispatch(t, mw, h, req)

		assert.Equal(t, "fixed", w.Header().Get("X-Trace-ID"))
	})

	t.Run("header applies when a later stage short-circuits", func(t *testing.T) {
		t.Parallel()

		r := router.NewRouter[*router.Context]()
		r.Get("/test", func(ctx *router.Context) handler.Response {
			return response.String("never")
		})

		blocker := func(ctx *router.Context, next handler.HandlerFunc[*router.Context]) handler.Response {
			return response.StringWithStatus("denied", http.StatusForbidden)
		}
		d := router.New(r, router.WithMiddleware(
			middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
				Generator: func() string { return "short-circuit-id" },
			}),
			blocker,
		))

		w := httptest.NewRecorder()
		d.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "short-circuit-id", w.Header().Get("X-Request-ID"))
	})

	t.Run("skip bypasses the middleware", func(t *testing.T) {
		t.Parallel()

		h := func(ctx *router.Context) handler.Response {
			return response.String("ok")
		}

		mw := middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
			Skip: func(ctx handler.Context) bool { return true },
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := dispatch(t, mw, h, req)

		assert.Empty(t, w.Header().Get("X-Request-ID"))
	})
}
