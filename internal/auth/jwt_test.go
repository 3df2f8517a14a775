package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

const testSecret = "a-long-and-safe-secret-used-only-in-tests"
const testRole = "user"

var testUserID = uuid.NewString()

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic on an empty secret")
			}
		}()

		auth.Init("")
	})

	t.Run("ValidSecret", func(t *testing.T) {
		auth.Init(testSecret)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. expected %s, got %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. expected %s, got %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT accepted an expired token")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for an expired token. expected %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		auth.Init("a-different-forged-secret")
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		auth.Init(testSecret)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("wrong error for an invalid signature: %v", err)
		}
	})
}

func TestMiddlewares(t *testing.T) {
	auth.Init(testSecret)
	token, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	var seen *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("RequiredWithoutToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		auth.AuthMiddleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("RequiredWithBearer", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		auth.AuthMiddleware(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || seen == nil || seen.String() != testUserID {
			t.Errorf("expected an authenticated user, got status %d id %v", rec.Code, seen)
		}
	})

	t.Run("RequiredWithCookie", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		rec := httptest.NewRecorder()
		auth.AuthMiddleware(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || seen == nil {
			t.Errorf("expected a cookie-authenticated user, got status %d", rec.Code)
		}
	})

	t.Run("OptionalWithGarbageToken", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		auth.OptionalAuthMiddleware(next).ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || seen != nil {
			t.Errorf("expected anonymous access, got status %d id %v", rec.Code, seen)
		}
	})
}

func TestPassword(t *testing.T) {
	if _, err := auth.HashPassword("123"); !errors.Is(err, auth.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}

	hash, err := auth.HashPassword("strong-secret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !auth.CheckPassword(hash, "strong-secret") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "another-password") {
		t.Error("wrong password accepted")
	}
}
