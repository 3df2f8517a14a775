package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/resume"
	"golang.org/x/time/rate"
)

// LetterGeneration is used for cover letters: free text, more varied wording.
var LetterGeneration = resume.Generation{Temperature: 0.7, MaxTokens: 500}

const (
	maxJobDescription = 8000
	defaultSignature  = "Your Name"
)

var (
	errNoProvider  = errors.New("no AI provider configured")
	errRateLimited = errors.New("AI rate limit reached")
	errEmptyLetter = errors.New("empty cover letter")
)

// LetterWriter drafts cover letters with the configured model and falls back
// to a fixed template whenever the model cannot be used.
type LetterWriter struct {
	provider resume.Provider
	limiter  *rate.Limiter
	timeout  time.Duration
}

// NewLetterWriter builds a writer. provider and limiter may be nil.
func NewLetterWriter(provider resume.Provider, timeout time.Duration, limiter *rate.Limiter) *LetterWriter {
	if timeout <= 0 {
		timeout = resume.DefaultTimeout
	}
	return &LetterWriter{provider: provider, limiter: limiter, timeout: timeout}
}

func (w *LetterWriter) Write(ctx context.Context, req CoverLetterRequest, profile CoverLetterProfile) (string, resume.Source) {
	letter, err := w.complete(ctx, req, profile)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Cover letter generation unavailable, using template")
		return FallbackLetter(req.JobTitle, req.Company, profile.Name), resume.SourceFallback
	}
	return letter, resume.SourceAI
}

func (w *LetterWriter) complete(ctx context.Context, req CoverLetterRequest, profile CoverLetterProfile) (string, error) {
	if w.provider == nil {
		return "", errNoProvider
	}
	if w.limiter != nil && !w.limiter.Allow() {
		return "", errRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	raw, err := w.provider.Complete(ctx, buildLetterPrompt(req, profile))
	if err != nil {
		return "", err
	}
	letter := strings.TrimSpace(raw)
	if letter == "" {
		return "", errEmptyLetter
	}
	return letter, nil
}

func buildLetterPrompt(req CoverLetterRequest, profile CoverLetterProfile) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		profileJSON = []byte("{}")
	}
	return fmt.Sprintf(`Generate a professional cover letter for:
Job Title: %s
Company: %s
Job Description: %s

User Profile: %s

Make it ATS-friendly, professional, and personalized. Keep it under 300 words.
Answer with the letter text only.`, req.JobTitle, req.Company, req.JobDescription, profileJSON)
}

// FallbackLetter is the template served when no model answer is available.
func FallbackLetter(jobTitle, company, name string) string {
	if strings.TrimSpace(name) == "" {
		name = defaultSignature
	}
	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. With my background in software development and passion for technology, I am excited about the opportunity to contribute to your team.

My experience includes working with modern technologies and frameworks that align well with your requirements. I am particularly drawn to %s's mission and would love to bring my skills to help achieve your goals.

I would welcome the opportunity to discuss how my background and enthusiasm can contribute to your team's success.

Best regards,
%s`, jobTitle, company, company, name)
}
