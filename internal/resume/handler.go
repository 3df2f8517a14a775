package resume

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/user"
)

// multipart overhead allowed on top of the file itself
const formSlack = 1 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	f, h, err := r.FormFile("resume")
	if errors.Is(err, http.ErrMissingFile) {
		return r.FormFile("file")
	}
	return f, h, err
}

// Upload godoc
// @Summary      Upload a resume for ATS scoring
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume          formData  file    true   "PDF or DOCX, up to 5MB"
// @Param        jobDescription  formData  string  false  "target job description"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  config.ErrorResponse
// @Router       /api/resume/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+formSlack)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			config.Error(w, http.StatusBadRequest, "file exceeds the 5MB limit", nil)
			return
		}
		config.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	file, header, err := formFile(r)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "No file uploaded", nil)
		return
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		config.Error(w, http.StatusBadRequest, "file exceeds the 5MB limit", nil)
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		config.Error(w, http.StatusBadRequest, "could not read uploaded file", err)
		return
	}
	if len(data) > MaxUploadSize {
		config.Error(w, http.StatusBadRequest, "file exceeds the 5MB limit", nil)
		return
	}

	resp, err := h.service.Analyze(r.Context(), userID, Upload{
		Filename:       header.Filename,
		ContentType:    header.Header.Get("Content-Type"),
		Data:           data,
		JobDescription: r.FormValue("jobDescription"),
	})
	switch {
	case err == nil:
		config.JSON(w, http.StatusOK, resp)
	case errors.Is(err, ErrUnsupportedFile):
		config.Error(w, http.StatusBadRequest, ErrUnsupportedFile.Error(), nil)
	case errors.Is(err, ErrUnreadableDocument), errors.Is(err, ErrEmptyDocument):
		config.Error(w, http.StatusBadRequest, "failed to parse resume", err)
	case errors.Is(err, user.ErrUserNotFound):
		config.Error(w, http.StatusNotFound, "user not found", nil)
	default:
		config.Error(w, http.StatusInternalServerError, "failed to analyze resume", err)
	}
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == nil {
		config.Error(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	records, err := h.service.History(r.Context(), *userID)
	if err != nil {
		config.Error(w, http.StatusInternalServerError, "internal server error", err)
		return
	}
	config.JSON(w, http.StatusOK, records)
}
