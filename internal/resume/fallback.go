package resume

import (
	"regexp"
	"strings"
)

const maxFallbackKeywords = 4

var keywordPattern = regexp.MustCompile(`(?i)\b(javascript|react|node|python|java|aws|docker|kubernetes|mongodb|sql|git)\b`)

// MatchKeywords returns the vocabulary terms found in jobDescription, lower
// cased, deduplicated, in order of first appearance and capped at four.
func MatchKeywords(jobDescription string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range keywordPattern.FindAllString(jobDescription, -1) {
		k := strings.ToLower(m)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
		if len(out) == maxFallbackKeywords {
			break
		}
	}
	return out
}

// Fallback builds an approximate analysis from the job description alone.
// intn must return a value in [0,n).
func Fallback(jobDescription string, intn func(n int) int) Analysis {
	hasJD := strings.TrimSpace(jobDescription) != ""

	var score int
	if hasJD {
		score = 75 + intn(20)
	} else {
		score = 70 + intn(25)
	}

	first := "Add more technical keywords to improve ATS compatibility"
	lastStrength := "Demonstrates technical competency"
	if hasJD {
		first = "Align your skills more closely with the job requirements"
		lastStrength = "Shows relevant experience for the target role"
	}

	keywords := MatchKeywords(jobDescription)
	if !hasJD || len(keywords) == 0 {
		keywords = append([]string{}, recoveredKeywords...)
	}

	return Analysis{
		ATSScore: score,
		Suggestions: []string{
			first,
			"Include quantifiable achievements (e.g., 'Improved performance by 30%')",
			"Use action verbs to start each bullet point (Built, Developed, Implemented)",
			"Add a professional summary section at the top",
			"Include relevant certifications and technical skills section",
		},
		MissingKeywords: keywords,
		Strengths: []string{
			"Clear professional experience section",
			"Good use of technical terminology",
			"Well-structured education background",
			lastStrength,
		},
		Source: SourceFallback,
	}
}
