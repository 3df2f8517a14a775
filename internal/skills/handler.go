package skills

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func callerID(r *http.Request) (uuid.UUID, bool) {
	id := auth.UserIDFromContext(r.Context())
	if id == nil {
		return uuid.Nil, false
	}
	return *id, true
}

// Demand godoc
// @Summary      Market demand for popular skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  DemandResponse
// @Router       /api/skills/demand [get]
func (h *Handler) Demand(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Demand(r.Context()))
}

// CoverLetter godoc
// @Summary      Draft a cover letter
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      CoverLetterRequest  true  "target job"
// @Success      200   {object}  CoverLetterResponse
// @Failure      400   {object}  config.ErrorResponse
// @Failure      401   {object}  config.ErrorResponse
// @Router       /api/skills/cover-letter [post]
func (h *Handler) CoverLetter(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req CoverLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid cover letter body")
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.CoverLetter(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		config.Error(w, http.StatusInternalServerError, "failed to generate cover letter", err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CareerTips(w http.ResponseWriter, r *http.Request) {
	id, ok := callerID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	config.JSON(w, http.StatusOK, h.service.CareerTips(r.Context(), id))
}
