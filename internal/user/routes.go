package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

func Routes(h *Handler, requireDB func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/profile", h.GetProfile)
		r.With(requireDB).Put("/profile", h.UpdateProfile)
	})
	return r
}

func AuthRoutes(h *Handler, logout http.HandlerFunc, requireDB func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(requireDB).Post("/register", h.Register)
	r.With(requireDB).Post("/login", h.Login)
	r.Post("/logout", logout)
	r.With(auth.AuthMiddleware).Get("/me", h.Me)
	return r
}
