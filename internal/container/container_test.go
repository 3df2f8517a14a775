package container_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/container"
)

func newApp(t *testing.T) (*container.Container, http.Handler) {
	t.Helper()
	auth.Init("test-secret-for-container")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, container.Migrate(db))

	c, err := container.Build(context.Background(), config.Settings{StatsTimeout: 2 * time.Second}, db)
	require.NoError(t, err)
	return c, c.Router()
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubmitScenario(t *testing.T) {
	c, h := newApp(t)

	rec := do(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var registered struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	token := registered.Token

	rec = do(t, h, http.MethodPost, "/api/quiz/seed", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/quiz/DSA", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	questions, err := c.QuizContainer.Repo.ListQuestions(context.Background(), "DSA", "", 10)
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	q := questions[0]

	answer := q.CorrectOption
	rec = do(t, h, http.MethodPost, "/api/quiz/submit", token, map[string]interface{}{
		"quizId": q.ID.String(), "selectedAnswer": answer, "timeSpent": 30,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result struct {
		IsCorrect     bool `json:"isCorrect"`
		CorrectAnswer int  `json:"correctAnswer"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsCorrect)
	assert.Equal(t, q.CorrectOption, result.CorrectAnswer)

	rec = do(t, h, http.MethodGet, "/api/user/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Stats struct {
			TotalQuizzes          int `json:"totalQuizzes"`
			AverageInterviewScore int `json:"averageInterviewScore"`
			SkillsCount           int `json:"skillsCount"`
		} `json:"stats"`
		RecentActivity []struct {
			Category string `json:"category"`
			Score    int    `json:"score"`
		} `json:"recentActivity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.Stats.TotalQuizzes)
	assert.Equal(t, 100, view.Stats.AverageInterviewScore)
	assert.Equal(t, 0, view.Stats.SkillsCount)
	require.Len(t, view.RecentActivity, 1)
	assert.Equal(t, "DSA", view.RecentActivity[0].Category)

	rec = do(t, h, http.MethodGet, "/api/quiz/stats/user", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalAttempts  int `json:"totalAttempts"`
		CorrectAnswers int `json:"correctAnswers"`
		AverageScore   int `json:"averageScore"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalAttempts)
	assert.Equal(t, 1, stats.CorrectAnswers)
	assert.Equal(t, 100, stats.AverageScore)

	rec = do(t, h, http.MethodPost, "/api/skills/cover-letter", token, map[string]string{"jobTitle": "Go Developer", "company": "Acme"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var letter struct {
		CoverLetter string `json:"coverLetter"`
		Source      string `json:"source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &letter))
	assert.Equal(t, "fallback", letter.Source)
	assert.Contains(t, letter.CoverLetter, "Ada")
}

func TestAnonymousRoutes(t *testing.T) {
	_, h := newApp(t)

	rec := do(t, h, http.MethodGet, "/api/user/dashboard", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/quiz/categories", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/skills/demand", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/skills/cover-letter", "", map[string]string{"jobTitle": "Go Developer", "company": "Acme"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/quiz/submit", "", map[string]interface{}{"quizId": "not-a-uuid"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	c, h := newApp(t)

	rec := do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	sqlDB, err := c.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec = do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/quiz/seed", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
