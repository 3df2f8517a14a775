package resume_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/resume"
	"github.com/saulo-duarte/careercoach/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistory struct {
	records []user.ResumeRecord
	err     error
}

func (s *stubHistory) RecordResume(ctx context.Context, id uuid.UUID, rec *user.ResumeRecord) error {
	if s.err != nil {
		return s.err
	}
	rec.ID = uint(len(s.records) + 1)
	rec.UserID = id
	s.records = append(s.records, *rec)
	return nil
}

func (s *stubHistory) ListResumeRecords(ctx context.Context, id uuid.UUID) ([]user.ResumeRecord, error) {
	return s.records, s.err
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte, jd string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if jd != "" {
		require.NoError(t, mw.WriteField("jobDescription", jd))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func upload(h *resume.Handler, id uuid.UUID, body *bytes.Buffer, ct string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/resume/upload", body)
	req.Header.Set("Content-Type", ct)
	req = req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{UserID: id.String(), Role: "user"}))
	rec := httptest.NewRecorder()
	h.Upload(rec, req)
	return rec
}

func TestUploadHandler(t *testing.T) {
	id := uuid.New()

	t.Run("FallbackWithoutProvider", func(t *testing.T) {
		store := &stubHistory{}
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), store, 0))

		body, ct := multipartBody(t, "resume", "cv.docx", docxType, buildDOCX(t, "Jane Doe", "Go engineer"), "React AWS Docker")
		rec := upload(h, id, body, ct)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp struct {
			ATSScore          int      `json:"atsScore"`
			MissingKeywords   []string `json:"missingKeywords"`
			Filename          string   `json:"filename"`
			ResumeText        string   `json:"resumeText"`
			HasJobDescription bool     `json:"hasJobDescription"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.GreaterOrEqual(t, resp.ATSScore, 75)
		assert.LessOrEqual(t, resp.ATSScore, 94)
		assert.Subset(t, []string{"react", "aws", "docker"}, resp.MissingKeywords)
		assert.Equal(t, "cv.docx", resp.Filename)
		assert.Equal(t, "Jane Doe\nGo engineer...", resp.ResumeText)
		assert.True(t, resp.HasJobDescription)

		require.Len(t, store.records, 1)
		assert.Equal(t, resp.ATSScore, store.records[0].ATSScore)
		assert.Equal(t, id, store.records[0].UserID)
	})

	t.Run("AlternateFieldName", func(t *testing.T) {
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), &stubHistory{}, 0))
		body, ct := multipartBody(t, "file", "cv.docx", docxType, buildDOCX(t, "Jane"), "")
		rec := upload(h, id, body, ct)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UnsupportedFile", func(t *testing.T) {
		store := &stubHistory{}
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), store, 0))
		body, ct := multipartBody(t, "resume", "cv.txt", "text/plain", []byte("plain text"), "")
		rec := upload(h, id, body, ct)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, store.records)
	})

	t.Run("NoFile", func(t *testing.T) {
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), &stubHistory{}, 0))
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("jobDescription", "Go"))
		require.NoError(t, mw.Close())
		rec := upload(h, id, &buf, mw.FormDataContentType())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), &stubHistory{err: user.ErrUserNotFound}, 0))
		body, ct := multipartBody(t, "resume", "cv.docx", docxType, buildDOCX(t, "Jane"), "")
		rec := upload(h, id, body, ct)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), &stubHistory{}, 0))
		rec := httptest.NewRecorder()
		h.Upload(rec, httptest.NewRequest(http.MethodPost, "/api/resume/upload", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHistoryHandler(t *testing.T) {
	id := uuid.New()
	store := &stubHistory{}
	h := resume.NewHandler(resume.NewService(resume.NewScorer(nil, time.Second, nil), store, 0))

	body, ct := multipartBody(t, "resume", "cv.docx", docxType, buildDOCX(t, "Jane"), "")
	require.Equal(t, http.StatusOK, upload(h, id, body, ct).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/resume/history", nil)
	req = req.WithContext(auth.WithClaims(req.Context(), &auth.Claims{UserID: id.String(), Role: "user"}))
	rec := httptest.NewRecorder()
	h.History(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []user.ResumeRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "cv.docx", records[0].Filename)
}
