package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/response"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       func(string) func(http.ResponseWriter, *http.Request) error
		wantStatus int
	}{
		{"temporary", func(u string) func(http.ResponseWriter, *http.Request) error { return response.Redirect(u) }, http.StatusFound},
		{"permanent", func(u string) func(http.ResponseWriter, *http.Request) error { return response.RedirectPermanent(u) }, http.StatusMovedPermanently},
		{"see other", func(u string) func(http.ResponseWriter, *http.Request) error { return response.RedirectSeeOther(u) }, http.StatusSeeOther},
		{"temporary preserving method", func(u string) func(http.ResponseWriter, *http.Request) error { return response.RedirectTemporary(u) }, http.StatusTemporaryRedirect},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/old", nil)

			require.NoError(t, tt.resp("/new")(w, r))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "/new", w.Header().Get("Location"))
		})
	}

	t.Run("status outside 3xx falls back to 302", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/old", nil)

		require.NoError(t, response.RedirectWithStatus("/new", http.StatusOK)(w, r))
		assert.Equal(t, http.StatusFound, w.Code)
	})
}
