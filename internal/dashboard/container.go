package dashboard

import "time"

type DashboardContainer struct {
	Service Service
	Handler *Handler
}

func NewDashboardContainer(quizzes QuizSource, users UserSource, timeout time.Duration) *DashboardContainer {
	service := NewService(quizzes, users, timeout)
	handler := NewHandler(service)

	return &DashboardContainer{
		Service: service,
		Handler: handler,
	}
}
