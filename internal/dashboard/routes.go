package dashboard

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.OptionalAuthMiddleware)
	r.Get("/", h.Dashboard)
	return r
}
