package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/careercoach/internal/config"
	"github.com/saulo-duarte/careercoach/internal/dashboard"
	"github.com/saulo-duarte/careercoach/internal/middlewares"
	"github.com/saulo-duarte/careercoach/internal/quiz"
	"github.com/saulo-duarte/careercoach/internal/resume"
	"github.com/saulo-duarte/careercoach/internal/skills"
	"github.com/saulo-duarte/careercoach/internal/user"

	_ "github.com/saulo-duarte/careercoach/docs"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	QuizHandler      *quiz.Handler
	DashboardHandler *dashboard.Handler
	ResumeHandler    *resume.Handler
	SkillsHandler    *skills.Handler
	Logout           http.HandlerFunc
	Ping             middlewares.PingFunc
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	requireDB := middlewares.RequireDB(cfg.Ping)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", health(cfg.Ping))

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", user.AuthRoutes(cfg.UserHandler, cfg.Logout, requireDB))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler, requireDB))
		r.Mount("/resume", resume.Routes(cfg.ResumeHandler, requireDB))
		r.Mount("/skills", skills.Routes(cfg.SkillsHandler))

		r.Route("/user", func(r chi.Router) {
			r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
			r.Mount("/", user.Routes(cfg.UserHandler, requireDB))
		})
	})
	return r
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// health godoc
// @Summary      Liveness and store readiness
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Failure      503  {object}  healthResponse
// @Router       /health [get]
func health(ping middlewares.PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Health check failed")
			config.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		config.JSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected"})
	}
}
