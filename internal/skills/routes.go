package skills

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/demand", h.Demand)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/cover-letter", h.CoverLetter)
		r.Get("/career-tips", h.CareerTips)
	})
	return r
}
