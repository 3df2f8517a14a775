package quiz

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/catalog"
	util "github.com/saulo-duarte/careercoach/internal/utils"
)

type SubmitRequest struct {
	QuizID         string `json:"quizId"`
	SelectedAnswer *int   `json:"selectedAnswer"`
	TimeSpent      int    `json:"timeSpent"`
}

// UnmarshalJSON accepts any value for selectedAnswer and timeSpent. Anything
// that is not a whole number decodes as no selection and zero seconds, so a
// malformed answer is graded as wrong instead of rejected.
func (r *SubmitRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		QuizID         string          `json:"quizId"`
		SelectedAnswer json.RawMessage `json:"selectedAnswer"`
		TimeSpent      json.RawMessage `json:"timeSpent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.QuizID = raw.QuizID
	r.SelectedAnswer = wholeNumber(raw.SelectedAnswer)
	r.TimeSpent = 0
	if n := wholeNumber(raw.TimeSpent); n != nil {
		r.TimeSpent = *n
	}
	return nil
}

func wholeNumber(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

type SubmitResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// QuestionDTO is a question as served to a player: no answer, no explanation.
type QuestionDTO struct {
	ID         uuid.UUID          `json:"id"`
	Category   string             `json:"category"`
	Difficulty catalog.Difficulty `json:"difficulty"`
	Prompt     string             `json:"question"`
	Options    []string           `json:"options"`
	Tags       []string           `json:"tags"`
}

func ToQuestionDTO(q *Question) QuestionDTO {
	return QuestionDTO{
		ID:         q.ID,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Options:    append([]string{}, q.Options...),
		Tags:       append([]string{}, q.Tags...),
	}
}

type CategoriesResponse struct {
	Success         bool                      `json:"success"`
	Categories      []catalog.CategorySummary `json:"categories"`
	TotalCategories int                       `json:"totalCategories"`
}

type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type RecentQuizDTO struct {
	Category string    `json:"category"`
	Score    int       `json:"score"`
	Date     util.Date `json:"date"`
}

type StatsResponse struct {
	Success           bool               `json:"success"`
	TotalQuestions    int64              `json:"totalQuestions"`
	TotalCategories   int                `json:"totalCategories"`
	Categories        []string           `json:"categories"`
	Difficulties      []string           `json:"difficulties"`
	CategoryBreakdown []CategoryCountDTO `json:"categoryBreakdown"`
	RecentQuizzes     []RecentQuizDTO    `json:"recentQuizzes"`
	CompletedToday    int                `json:"completedToday"`
	AverageScore      int                `json:"averageScore"`
}

type CategoryStatsDTO struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

type UserStatsResponse struct {
	TotalAttempts  int                         `json:"totalAttempts"`
	CorrectAnswers int                         `json:"correctAnswers"`
	AverageScore   int                         `json:"averageScore"`
	CategoryStats  map[string]CategoryStatsDTO `json:"categoryStats"`
	RecentQuizzes  []RecentQuizDTO             `json:"recentQuizzes"`
}

type SeedResult struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

func toRecentDTOs(samples []Sample) []RecentQuizDTO {
	out := make([]RecentQuizDTO, 0, len(samples))
	for _, s := range samples {
		out = append(out, RecentQuizDTO{
			Category: s.Category,
			Score:    s.Score,
			Date:     util.NewDate(s.Date),
		})
	}
	return out
}
