package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/catalog"
	"gorm.io/datatypes"
)

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Category      string                      `gorm:"type:text;not null;index" json:"category"`
	Difficulty    catalog.Difficulty          `gorm:"type:text;not null" json:"difficulty"`
	Prompt        string                      `gorm:"type:text;not null;uniqueIndex" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"not null" json:"options"`
	CorrectOption int                         `gorm:"not null" json:"-"`
	Explanation   string                      `gorm:"type:text" json:"-"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
}

func (Question) TableName() string {
	return "quiz_questions"
}

// Attempt is append-only. ID is assigned by the store and defines insertion order.
type Attempt struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	QuestionID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"questionId"`
	SelectedOption   *int       `json:"selectedAnswer"`
	IsCorrect        bool       `gorm:"not null" json:"isCorrect"`
	TimeSpentSeconds int        `gorm:"not null;default:0" json:"timeSpent"`
	Category         string     `gorm:"type:text;not null;index" json:"category"`
	SubmittedAt      time.Time  `gorm:"not null;index" json:"submittedAt"`
}

func (Attempt) TableName() string {
	return "quiz_attempts"
}

// IsCorrectAnswer never fails: a missing or out-of-range selection is wrong.
func (q *Question) IsCorrectAnswer(selected *int) bool {
	if selected == nil {
		return false
	}
	if *selected < 0 || *selected >= len(q.Options) {
		return false
	}
	return *selected == q.CorrectOption
}
