package resume

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careercoach/internal/auth"
)

func Routes(h *Handler, requireDB func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)
	r.With(requireDB).Post("/upload", h.Upload)
	r.Get("/history", h.History)
	return r
}
