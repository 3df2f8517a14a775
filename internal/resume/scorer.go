package resume

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const DefaultTimeout = 12 * time.Second

var errRateLimited = errors.New("AI rate limit reached")

// Scorer turns resume text into an Analysis. Score always returns a usable
// result; when the model cannot be used it falls back to a local heuristic.
type Scorer struct {
	provider Provider
	limiter  *rate.Limiter
	timeout  time.Duration
	intn     func(n int) int
}

// NewScorer builds a scorer. provider may be nil. A nil limiter admits every
// call.
func NewScorer(provider Provider, timeout time.Duration, limiter *rate.Limiter) *Scorer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scorer{
		provider: provider,
		limiter:  limiter,
		timeout:  timeout,
		intn:     rand.IntN,
	}
}

// NewLimiter allows perMinute calls a minute with bursts of the same size.
// It returns nil for perMinute <= 0.
func NewLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) Analysis {
	log := config.WithContext(ctx)

	raw, err := s.complete(ctx, resumeText, jobDescription)
	if err != nil {
		log.WithError(err).Warn("AI scoring unavailable, using fallback analysis")
		return Fallback(jobDescription, s.intn).normalize()
	}

	a, err := ParseAnalysis(raw)
	if err == nil {
		return a.normalize()
	}
	log.WithError(err).Warn("AI answer is not the expected JSON")

	if recovered, ok := RecoverAnalysis(raw); ok {
		log.WithField("ats_score", recovered.ATSScore).Info("Recovered ATS score from AI answer")
		return recovered.normalize()
	}

	log.WithFields(logrus.Fields{"answer_bytes": len(raw)}).Warn("AI answer unusable, using fallback analysis")
	return Fallback(jobDescription, s.intn).normalize()
}

func (s *Scorer) complete(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if s.provider == nil {
		return "", errNoProvider
	}
	if s.limiter != nil && !s.limiter.Allow() {
		return "", errRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.Complete(ctx, buildPrompt(resumeText, jobDescription))
}
