package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/config"
)

type contextKey string

const userClaimsKey contextKey = "userClaims"

const cookieName = "jwt"

var ErrNoClaims = errors.New("no user claims in context")

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			config.Error(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("Rejected token")
			config.Error(w, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// OptionalAuthMiddleware attaches claims when a valid token is present and
// lets the request through anonymously otherwise.
func OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenStr := tokenFromRequest(r); tokenStr != "" {
			if claims, err := ValidateJWT(tokenStr); err == nil {
				r = r.WithContext(WithClaims(r.Context(), claims))
			} else {
				config.WithContext(r.Context()).WithError(err).Debug("Ignoring invalid token on optional route")
			}
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// UserIDFromContext returns the caller's id, or nil for anonymous requests
// and tokens carrying a malformed id.
func UserIDFromContext(ctx context.Context) *uuid.UUID {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}
