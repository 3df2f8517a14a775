package skills

import (
	"context"

	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/resume"
	"golang.org/x/time/rate"
)

type SkillsContainer struct {
	Writer  *LetterWriter
	Service Service
	Handler *Handler
}

func NewSkillsContainer(ctx context.Context, s config.Settings, users UserSource, limiter *rate.Limiter) (*SkillsContainer, error) {
	provider, err := resume.NewProvider(ctx, s, LetterGeneration)
	if err != nil {
		return nil, err
	}

	writer := NewLetterWriter(provider, s.AITimeout, limiter)
	service := NewService(writer, users, s.StatsTimeout)
	handler := NewHandler(service)

	return &SkillsContainer{
		Writer:  writer,
		Service: service,
		Handler: handler,
	}, nil
}
