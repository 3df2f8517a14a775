package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

func Routes(h *Handler, requireDB func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/categories", h.Categories)
	r.Get("/stats", h.Stats)
	r.With(auth.AuthMiddleware).Get("/stats/user", h.UserStats)

	r.Group(func(r chi.Router) {
		r.Use(requireDB)
		r.Post("/seed", h.Seed)
		r.With(auth.OptionalAuthMiddleware).Post("/submit", h.Submit)
	})

	r.With(auth.OptionalAuthMiddleware).Get("/{category}", h.ListByCategory)
	return r
}
