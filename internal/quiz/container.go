package quiz

import (
	"time"

	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, progress ProgressRecorder, statsTimeout time.Duration) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, progress, statsTimeout)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
