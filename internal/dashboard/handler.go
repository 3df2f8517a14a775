package dashboard

import (
	"net/http"

	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Dashboard godoc
// @Summary      Dashboard for the caller, or the public preview when anonymous
// @Tags         user
// @Produce      json
// @Success      200  {object}  View
// @Router       /api/user/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view := h.service.Dashboard(r.Context(), auth.UserIDFromContext(r.Context()))
	config.JSON(w, http.StatusOK, view)
}
