package container

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/saulo-duarte/careercoach/internal/auth"
	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/dashboard"
	"github.com/saulo-duarte/careercoach/internal/quiz"
	"github.com/saulo-duarte/careercoach/internal/resume"
	"github.com/saulo-duarte/careercoach/internal/router"
	"github.com/saulo-duarte/careercoach/internal/skills"
	"github.com/saulo-duarte/careercoach/internal/user"
)

const pingTimeout = 2 * time.Second

type Container struct {
	Settings           config.Settings
	DB                 *gorm.DB
	UserContainer      *user.UserContainer
	QuizContainer      *quiz.QuizContainer
	DashboardContainer *dashboard.DashboardContainer
	ResumeContainer    *resume.ResumeContainer
	SkillsContainer    *skills.SkillsContainer
	Session            *auth.Handler
}

func New() *Container {
	config.Init()
	settings := config.LoadSettings()
	auth.Init(settings.JWTSecret)
	config.InitCrypto(settings.CryptoKey)

	ctx := context.Background()
	db, err := config.Connect(ctx, settings.DBDriver, settings.DatabaseDSN)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to connect to DB")
	}
	if err := Migrate(db); err != nil {
		config.Logger.WithError(err).Fatal("failed to migrate DB")
	}

	c, err := Build(ctx, settings, db)
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to build container")
	}
	return c
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&quiz.Question{},
		&quiz.Attempt{},
		&user.User{},
		&user.InterviewScore{},
		&user.ResumeRecord{},
	)
}

// Build wires the feature containers on an open database. The user store
// doubles as quiz progress recorder, dashboard user source and resume history.
// Resume scoring and cover letters share one AI rate limit.
func Build(ctx context.Context, settings config.Settings, db *gorm.DB) (*Container, error) {
	session := auth.NewHandler(settings.CookieDomain, config.IsProduction())

	userContainer := user.NewUserContainer(db, session)
	quizContainer := quiz.NewQuizContainer(db, userContainer.Repo, settings.StatsTimeout)
	dashboardContainer := dashboard.NewDashboardContainer(quizContainer.Repo, userContainer.Repo, settings.StatsTimeout)

	limiter := resume.NewLimiter(settings.AIRequestsPerMinute)
	resumeContainer, err := resume.NewResumeContainer(ctx, settings, userContainer.Repo, limiter)
	if err != nil {
		return nil, err
	}
	skillsContainer, err := skills.NewSkillsContainer(ctx, settings, userContainer.Repo, limiter)
	if err != nil {
		return nil, err
	}

	return &Container{
		Settings:           settings,
		DB:                 db,
		UserContainer:      userContainer,
		QuizContainer:      quizContainer,
		DashboardContainer: dashboardContainer,
		ResumeContainer:    resumeContainer,
		SkillsContainer:    skillsContainer,
		Session:            session,
	}, nil
}

func (c *Container) Ping(ctx context.Context) error {
	return config.Ping(ctx, c.DB, pingTimeout)
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
		ResumeHandler:    c.ResumeContainer.Handler,
		SkillsHandler:    c.SkillsContainer.Handler,
		Logout:           c.Session.Logout,
		Ping:             c.Ping,
	})
}
