package middlewares

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/careercoach/internal/config"
)

type PingFunc func(ctx context.Context) error

// RequireDB answers 503 without calling next when the store does not respond.
func RequireDB(ping PingFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := ping(r.Context()); err != nil {
				config.WithContext(r.Context()).WithError(err).Warn("Database not ready")
				config.Error(w, http.StatusServiceUnavailable, "database not ready, please try again later", err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
