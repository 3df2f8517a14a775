package resume

import (
	"context"

	"github.com/saulo-duarte/careercoach/internal/config"
	"golang.org/x/time/rate"
)

type ResumeContainer struct {
	Scorer  *Scorer
	Service Service
	Handler *Handler
}

// NewResumeContainer builds the upload pipeline. limiter may be shared with
// other AI features and may be nil.
func NewResumeContainer(ctx context.Context, s config.Settings, store HistoryStore, limiter *rate.Limiter) (*ResumeContainer, error) {
	provider, err := NewProvider(ctx, s, ScoringGeneration)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		config.WithContext(ctx).Warn("No AI key configured, resume scoring uses the fallback heuristic")
	}

	scorer := NewScorer(provider, s.AITimeout, limiter)
	service := NewService(scorer, store, s.ResumeProcessingDelay)
	handler := NewHandler(service)

	return &ResumeContainer{
		Scorer:  scorer,
		Service: service,
		Handler: handler,
	}, nil
}
