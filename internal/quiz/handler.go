package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

// Categories godoc
// @Summary      List quiz categories
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  CategoriesResponse
// @Router       /api/quiz/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// Stats godoc
// @Summary      Public quiz statistics
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /api/quiz/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Stats(r.Context()))
}

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Unauthenticated request for user stats")
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	config.JSON(w, http.StatusOK, h.service.UserStats(r.Context(), userID))
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "invalid category", err)
		return
	}
	difficulty := r.URL.Query().Get("difficulty")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			config.Error(w, http.StatusBadRequest, "limit must be a positive integer", convErr)
			return
		}
		limit = n
	}

	questions, err := h.service.Questions(r.Context(), category, difficulty, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			config.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}
	config.JSON(w, http.StatusOK, questions)
}

// Submit godoc
// @Summary      Submit an answer
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitRequest  true  "answer"
// @Success      200   {object}  SubmitResult
// @Failure      400   {object}  config.ErrorResponse
// @Failure      404   {object}  config.ErrorResponse
// @Router       /api/quiz/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid submit body")
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.service.Submit(r.Context(), auth.UserIDFromContext(r.Context()), req)
	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, result)
	case errors.Is(err, ErrInvalidInput):
		config.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrQuestionNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found", nil)
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
	}
}

func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "failed to seed quiz questions", err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "quiz questions seeded",
		"inserted": result.Inserted,
		"total":    result.Total,
	})
}
