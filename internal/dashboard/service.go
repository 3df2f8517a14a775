package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/quiz"
	"github.com/saulo-duarte/careercoach/internal/user"
	util "github.com/saulo-duarte/careercoach/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const anonymousWindow = recentActivityLimit

type QuizSource interface {
	CountQuestions(ctx context.Context) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	ListAttempts(ctx context.Context) ([]quiz.Attempt, error)
}

type UserSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetProgress(ctx context.Context, id uuid.UUID) (*user.Progress, error)
}

type Service interface {
	// Dashboard always returns a complete view. Any fetch that fails or
	// misses its deadline turns the whole response into DefaultView.
	Dashboard(ctx context.Context, userID *uuid.UUID) View
}

type service struct {
	quizzes QuizSource
	users   UserSource
	timeout time.Duration
	now     func() time.Time
}

func NewService(quizzes QuizSource, users UserSource, timeout time.Duration) Service {
	return &service{
		quizzes: quizzes,
		users:   users,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *service) Dashboard(ctx context.Context, userID *uuid.UUID) View {
	log := config.WithContext(ctx)

	var (
		total      util.Result[int64]
		categories util.Result[[]string]
		attempts   util.Result[[]quiz.Attempt]
		account    util.Result[*user.User]
		progress   util.Result[*user.Progress]
	)

	var g errgroup.Group
	g.Go(func() error {
		total = util.Fetch(ctx, s.timeout, s.quizzes.CountQuestions)
		return nil
	})
	g.Go(func() error {
		categories = util.Fetch(ctx, s.timeout, s.quizzes.DistinctCategories)
		return nil
	})
	if userID == nil {
		g.Go(func() error {
			attempts = util.Fetch(ctx, s.timeout, s.quizzes.ListAttempts)
			return nil
		})
	} else {
		id := *userID
		g.Go(func() error {
			account = util.Fetch(ctx, s.timeout, func(ctx context.Context) (*user.User, error) {
				return s.users.FindByID(ctx, id)
			})
			return nil
		})
		g.Go(func() error {
			progress = util.Fetch(ctx, s.timeout, func(ctx context.Context) (*user.Progress, error) {
				return s.users.GetProgress(ctx, id)
			})
			return nil
		})
	}
	_ = g.Wait()

	statuses := logrus.Fields{
		"total_questions": total.Status.String(),
		"categories":      categories.Status.String(),
	}
	ok := total.Ok() && categories.Ok()
	if userID == nil {
		statuses["attempts"] = attempts.Status.String()
		ok = ok && attempts.Ok()
	} else {
		statuses["user"] = account.Status.String()
		statuses["progress"] = progress.Status.String()
		ok = ok && account.Ok() && progress.Ok() && account.Value != nil && progress.Value != nil
	}
	if !ok {
		log.WithFields(statuses).Warn("Dashboard data unavailable, serving default view")
		return DefaultView()
	}

	cs := CatalogStats{
		TotalQuestions: total.Value,
		Categories:     categories.Value,
		AsOf:           s.now(),
	}
	if userID == nil {
		return ComposeAnonymous(quiz.Aggregate(attempts.Value, anonymousWindow), cs)
	}
	return ComposeAuthenticated(*progress.Value, account.Value.Profile, cs)
}
