package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	Avatar      *string                     `gorm:"type:text" json:"avatar"`
	Phone       *string                     `gorm:"type:text" json:"phone"`
	Location    *string                     `gorm:"type:text" json:"location"`
	Experience  *string                     `gorm:"type:text" json:"experience"`
	CurrentRole *string                     `gorm:"type:text" json:"currentRole"`
	TargetRole  *string                     `gorm:"type:text" json:"targetRole"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"type:text;not null;default:user" json:"role"`

	Profile Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`

	ResumeScore       int                         `gorm:"not null;default:0" json:"resumeScore"`
	TotalQuizzesTaken int                         `gorm:"not null;default:0" json:"totalQuizzesTaken"`
	SkillsImproved    datatypes.JSONSlice[string] `json:"skillsImproved"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// InterviewScore rows are append-only; ID order is chronological order.
// Score uses the 0-100 scale.
type InterviewScore struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Score      int       `gorm:"not null" json:"score"`
	Category   string    `gorm:"type:text;not null" json:"category"`
	RecordedAt time.Time `gorm:"not null" json:"date"`
}

type ResumeRecord struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	UserID           uuid.UUID                   `gorm:"type:uuid;not null;index" json:"-"`
	Filename         string                      `gorm:"type:text;not null" json:"filename"`
	UploadedAt       time.Time                   `gorm:"not null" json:"uploadDate"`
	ATSScore         int                         `gorm:"not null" json:"atsScore"`
	Suggestions      datatypes.JSONSlice[string] `json:"suggestions"`
	EncryptedPreview string                      `gorm:"type:text" json:"-"`
	Preview          string                      `gorm:"-" json:"preview,omitempty"`
}

// Progress is the user's mutable scoring state, assembled from the user row
// and the interview score history.
type Progress struct {
	ResumeScore       int              `json:"resumeScore"`
	InterviewScores   []InterviewScore `json:"interviewScores"`
	TotalQuizzesTaken int              `json:"totalQuizzesTaken"`
	SkillsImproved    []string         `json:"skillsImproved"`
}
