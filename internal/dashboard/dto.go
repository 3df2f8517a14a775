package dashboard

import (
	"time"

	"github.com/saulo-duarte/careercoach/internal/user"
	util "github.com/saulo-duarte/careercoach/internal/utils"
)

// CatalogStats is the catalog snapshot a view is composed against. AsOf is
// the day used for completedToday.
type CatalogStats struct {
	TotalQuestions int64
	Categories     []string
	AsOf           time.Time
}

type Stats struct {
	ResumeScore           int   `json:"resumeScore"`
	AverageInterviewScore int   `json:"averageInterviewScore"`
	TotalQuizzes          int   `json:"totalQuizzes"`
	SkillsCount           int   `json:"skillsCount"`
	AvailableQuestions    int64 `json:"availableQuestions"`
	QuizCategories        int   `json:"quizCategories"`
}

type Activity struct {
	Date     util.Date `json:"date"`
	Score    int       `json:"score"`
	Type     string    `json:"type"`
	Category string    `json:"category"`
}

type QuizOverview struct {
	TotalQuestions int64    `json:"totalQuestions"`
	Categories     []string `json:"categories"`
	CompletedToday int      `json:"completedToday"`
	AverageScore   int      `json:"averageScore"`
}

type View struct {
	Profile        *user.Profile  `json:"profile,omitempty"`
	Progress       *user.Progress `json:"progress,omitempty"`
	Stats          Stats          `json:"stats"`
	RecentActivity []Activity     `json:"recentActivity"`
	QuizOverview   QuizOverview   `json:"quizOverview"`
}
