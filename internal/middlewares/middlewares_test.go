package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/careercoach/internal/middlewares"
	"github.com/stretchr/testify/assert"
)

func TestRequireDB(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Down", func(t *testing.T) {
		h := middlewares.RequireDB(func(ctx context.Context) error { return errors.New("connection refused") })(ok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database not ready")
	})

	t.Run("Up", func(t *testing.T) {
		h := middlewares.RequireDB(func(ctx context.Context) error { return nil })(ok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCorsPreflight(t *testing.T) {
	h := middlewares.CorsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight must not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/quiz/submit", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
