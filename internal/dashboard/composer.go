package dashboard

import (
	"math"
	"time"

	"github.com/saulo-duarte/careercoach/internal/catalog"
	"github.com/saulo-duarte/careercoach/internal/quiz"
	"github.com/saulo-duarte/careercoach/internal/user"
	util "github.com/saulo-duarte/careercoach/internal/utils"
)

const (
	recentActivityLimit = 5

	// Shown on the public preview, where there is no personal data.
	previewResumeScore = 75
	previewSkillsCount = 8
)

// DefaultView is served whenever dashboard data cannot be gathered.
func DefaultView() View {
	return View{
		Stats: Stats{
			ResumeScore: previewResumeScore,
			SkillsCount: previewSkillsCount,
		},
		RecentActivity: []Activity{},
		QuizOverview: QuizOverview{
			Categories: []string{},
		},
	}
}

// ComposeAuthenticated builds the view from the user's own history. Without
// any interview score the average is a real 0.
func ComposeAuthenticated(progress user.Progress, profile user.Profile, cs CatalogStats) View {
	avg := meanScore(progress.InterviewScores)

	completedToday := 0
	for _, s := range progress.InterviewScores {
		if util.SameDay(s.RecordedAt, cs.AsOf) {
			completedToday++
		}
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if progress.InterviewScores == nil {
		progress.InterviewScores = []user.InterviewScore{}
	}
	if progress.SkillsImproved == nil {
		progress.SkillsImproved = []string{}
	}

	return View{
		Profile:  &profile,
		Progress: &progress,
		Stats: Stats{
			ResumeScore:           progress.ResumeScore,
			AverageInterviewScore: avg,
			TotalQuizzes:          progress.TotalQuizzesTaken,
			SkillsCount:           len(profile.Skills),
			AvailableQuestions:    cs.TotalQuestions,
			QuizCategories:        len(cs.Categories),
		},
		RecentActivity: recentFromScores(progress.InterviewScores),
		QuizOverview: QuizOverview{
			TotalQuestions: cs.TotalQuestions,
			Categories:     categoriesOrEmpty(cs.Categories),
			CompletedToday: completedToday,
			AverageScore:   avg,
		},
	}
}

// ComposeAnonymous builds the public preview from system-wide attempts.
// With no attempt yet the average is the neutral placeholder, not 0.
func ComposeAnonymous(agg quiz.AggregatedStats, cs CatalogStats) View {
	avg := agg.AverageScore(catalog.PlaceholderAverageScore)

	activity := make([]Activity, 0, recentActivityLimit)
	for _, s := range agg.RecentSamples {
		if len(activity) == recentActivityLimit {
			break
		}
		activity = append(activity, newActivity(s.Date, s.Score, s.Category))
	}

	return View{
		Stats: Stats{
			ResumeScore:           previewResumeScore,
			AverageInterviewScore: avg,
			TotalQuizzes:          agg.TotalAttempts,
			SkillsCount:           previewSkillsCount,
			AvailableQuestions:    cs.TotalQuestions,
			QuizCategories:        len(cs.Categories),
		},
		RecentActivity: activity,
		QuizOverview: QuizOverview{
			TotalQuestions: cs.TotalQuestions,
			Categories:     categoriesOrEmpty(cs.Categories),
			CompletedToday: agg.CompletedOn(cs.AsOf),
			AverageScore:   avg,
		},
	}
}

func meanScore(scores []user.InterviewScore) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s.Score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// recentFromScores returns the last entries of the history, newest first.
func recentFromScores(scores []user.InterviewScore) []Activity {
	out := make([]Activity, 0, recentActivityLimit)
	for i := len(scores) - 1; i >= 0 && len(out) < recentActivityLimit; i-- {
		s := scores[i]
		out = append(out, newActivity(s.RecordedAt, s.Score, s.Category))
	}
	return out
}

func newActivity(at time.Time, score int, category string) Activity {
	label := category
	if label == "" {
		label = "Unknown"
	}
	return Activity{
		Date:     util.NewDate(at),
		Score:    score,
		Type:     label + " Quiz",
		Category: label,
	}
}

func categoriesOrEmpty(c []string) []string {
	if c == nil {
		return []string{}
	}
	return append([]string{}, c...)
}
