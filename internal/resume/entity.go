package resume

import "time"

type Source string

const (
	SourceAI        Source = "ai"
	SourceRecovered Source = "recovered"
	SourceFallback  Source = "fallback"
)

const maxSuggestions = 5

type Analysis struct {
	ATSScore        int      `json:"atsScore"`
	Suggestions     []string `json:"suggestions"`
	MissingKeywords []string `json:"missingKeywords"`
	Strengths       []string `json:"strengths"`
	Source          Source   `json:"source"`
}

// normalize clamps the score into [0,100], caps suggestions and replaces nil
// lists with empty ones.
func (a Analysis) normalize() Analysis {
	a.ATSScore = clampScore(a.ATSScore)
	if len(a.Suggestions) > maxSuggestions {
		a.Suggestions = a.Suggestions[:maxSuggestions]
	}
	if a.Suggestions == nil {
		a.Suggestions = []string{}
	}
	if a.MissingKeywords == nil {
		a.MissingKeywords = []string{}
	}
	if a.Strengths == nil {
		a.Strengths = []string{}
	}
	return a
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

type UploadResponse struct {
	Analysis
	Filename          string    `json:"filename"`
	ResumeText        string    `json:"resumeText"`
	AnalysisDate      time.Time `json:"analysisDate"`
	HasJobDescription bool      `json:"hasJobDescription"`
}
