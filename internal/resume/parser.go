package resume

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedResponse = errors.New("malformed AI response")

var scorePattern = regexp.MustCompile(`"atsScore"\s*:\s*(-?\d+)`)

var (
	recoveredSuggestions = []string{
		"Add more technical keywords relevant to the job description",
		"Include quantifiable achievements with specific metrics",
		"Optimize resume format for ATS compatibility",
		"Add relevant certifications and skills section",
	}
	recoveredKeywords  = []string{"Node.js", "MongoDB", "AWS", "Docker", "TypeScript"}
	recoveredStrengths = []string{"Clear experience section", "Good technical skills listed"}
)

type rawAnalysis struct {
	ATSScore        *float64  `json:"atsScore"`
	Suggestions     *[]string `json:"suggestions"`
	MissingKeywords *[]string `json:"missingKeywords"`
	Strengths       *[]string `json:"strengths"`
}

// ParseAnalysis decodes a model answer. Code fences and any prose around the
// outermost JSON object are ignored; all four fields must be present and
// well typed.
func ParseAnalysis(raw string) (Analysis, error) {
	obj := extractJSON(stripFences(raw))
	if obj == "" {
		return Analysis{}, ErrMalformedResponse
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(obj)))
	var r rawAnalysis
	if err := dec.Decode(&r); err != nil {
		return Analysis{}, errors.Join(ErrMalformedResponse, err)
	}
	if r.ATSScore == nil || r.Suggestions == nil || r.MissingKeywords == nil || r.Strengths == nil {
		return Analysis{}, ErrMalformedResponse
	}
	if math.IsNaN(*r.ATSScore) || math.IsInf(*r.ATSScore, 0) {
		return Analysis{}, ErrMalformedResponse
	}

	score := math.Round(*r.ATSScore)
	if score > 1000 {
		score = 1000
	}
	if score < -1000 {
		score = -1000
	}
	return Analysis{
		ATSScore:        int(score),
		Suggestions:     *r.Suggestions,
		MissingKeywords: *r.MissingKeywords,
		Strengths:       *r.Strengths,
		Source:          SourceAI,
	}, nil
}

// RecoverAnalysis salvages a score from an answer that is not valid JSON,
// completing it with generic advice.
func RecoverAnalysis(raw string) (Analysis, bool) {
	m := scorePattern.FindStringSubmatch(raw)
	if m == nil {
		return Analysis{}, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		// Out of int range: keep only the sign, clamping does the rest.
		score = 100
		if strings.HasPrefix(m[1], "-") {
			score = 0
		}
	}
	return Analysis{
		ATSScore:        score,
		Suggestions:     append([]string{}, recoveredSuggestions...),
		MissingKeywords: append([]string{}, recoveredKeywords...),
		Strengths:       append([]string{}, recoveredStrengths...),
		Source:          SourceRecovered,
	}, true
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSON returns the outermost JSON object in s, skipping braces inside
// strings, or "" when there is none.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
