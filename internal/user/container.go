package user

import (
	"github.com/saulo-duarte/careercoach/internal/auth"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, session *auth.Handler) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service, session)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
