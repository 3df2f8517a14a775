package quiz

import (
	"math"
	"slices"
	"time"

	util "github.com/saulo-duarte/careercoach/internal/utils"
)

const (
	correctScore   = 100
	incorrectScore = 0
)

// ScoreFor maps an answer onto the 0-100 scale used for every stored score.
func ScoreFor(correct bool) int {
	if correct {
		return correctScore
	}
	return incorrectScore
}

type CategoryStats struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

type Sample struct {
	Date     time.Time `json:"date"`
	Score    int       `json:"score"`
	Category string    `json:"category"`
}

type AggregatedStats struct {
	TotalAttempts     int                      `json:"totalAttempts"`
	CorrectAnswers    int                      `json:"correctAnswers"`
	CategoryBreakdown map[string]CategoryStats `json:"categoryBreakdown"`
	RecentSamples     []Sample                 `json:"recentSamples"`

	submitted []time.Time
}

// Aggregate summarises attempts, which must be given in insertion order.
// RecentSamples holds the window most recent attempts, newest first; equal
// timestamps are ordered by insertion, later first.
func Aggregate(attempts []Attempt, window int) AggregatedStats {
	stats := AggregatedStats{
		TotalAttempts:     len(attempts),
		CategoryBreakdown: make(map[string]CategoryStats),
		RecentSamples:     []Sample{},
		submitted:         make([]time.Time, 0, len(attempts)),
	}

	for _, a := range attempts {
		cs := stats.CategoryBreakdown[a.Category]
		cs.Total++
		if a.IsCorrect {
			cs.Correct++
			stats.CorrectAnswers++
		}
		stats.CategoryBreakdown[a.Category] = cs
		stats.submitted = append(stats.submitted, a.SubmittedAt)
	}

	if window <= 0 || len(attempts) == 0 {
		return stats
	}

	order := make([]int, len(attempts))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		ti, tj := attempts[i].SubmittedAt, attempts[j].SubmittedAt
		switch {
		case ti.After(tj):
			return -1
		case ti.Before(tj):
			return 1
		default:
			return j - i
		}
	})

	if window < len(order) {
		order = order[:window]
	}
	for _, idx := range order {
		a := attempts[idx]
		stats.RecentSamples = append(stats.RecentSamples, Sample{
			Date:     a.SubmittedAt,
			Score:    ScoreFor(a.IsCorrect),
			Category: a.Category,
		})
	}
	return stats
}

// AverageScore is the rounded success percentage, or def when there is no
// attempt at all.
func (s AggregatedStats) AverageScore(def int) int {
	if s.TotalAttempts == 0 {
		return def
	}
	return Percent(s.CorrectAnswers, s.TotalAttempts)
}

// CompletedOn counts the attempts submitted on the same UTC day as day.
func (s AggregatedStats) CompletedOn(day time.Time) int {
	n := 0
	for _, t := range s.submitted {
		if util.SameDay(t, day) {
			n++
		}
	}
	return n
}

func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
