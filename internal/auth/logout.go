package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/careercoach/internal/config"
)

type Handler struct {
	cookieDomain string
	secure       bool
}

func NewHandler(cookieDomain string, secure bool) *Handler {
	return &Handler{cookieDomain: cookieDomain, secure: secure}
}

// SetSessionCookie stores token in the jwt cookie used by browser clients.
func (h *Handler) SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, h.cookie(token, int(ttl.Seconds())))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	}
}
