package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
)

type Handler struct {
	service UserService
	session *auth.Handler
}

func NewHandler(s UserService, session *auth.Handler) *Handler {
	return &Handler{service: s, session: session}
}

func currentUserID(r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		config.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ErrEmailTaken):
		config.Error(w, http.StatusBadRequest, "email already registered", nil)
	case errors.Is(err, ErrInvalidCredentials):
		config.Error(w, http.StatusUnauthorized, "invalid email or password", nil)
	case errors.Is(err, ErrUserNotFound):
		config.Error(w, http.StatusNotFound, "user not found", nil)
	default:
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
	}
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "account"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  config.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.session.SetSessionCookie(w, resp.Token, TokenTTL)
	config.JSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "credentials"
// @Success      200   {object}  AuthResponse
// @Failure      401   {object}  config.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.session.SetSessionCookie(w, resp.Token, TokenTTL)
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := currentUserID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	resp, err := h.service.Me(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := currentUserID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	p, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, p)
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileDTO  true  "fields to change"
// @Success      200   {object}  Profile
// @Failure      400   {object}  config.ErrorResponse
// @Router       /api/user/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, ok := currentUserID(r)
	if !ok {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var dto UpdateProfileDTO
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dto); err != nil {
		log.WithError(err).Warn("Rejected profile update body")
		config.Error(w, http.StatusBadRequest, "invalid profile update", err)
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), id, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, p)
}
