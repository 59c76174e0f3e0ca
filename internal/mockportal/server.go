// Package mockportal is a development stand-in for the job-portal backend.
// It implements the REST surface the gateway consumes — auth, jobs,
// applications, resumes, profiles, reviews, job alerts, AI, employer and
// admin aggregates — against in-memory state, with the same error envelope
// the production backend emits. Integration tests mount it in-process; the
// portal-mock binary serves it on a port.
package mockportal

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Config captures the settings for constructing the mock.
type Config struct {
	JWTSecret string
	// TokenTTL bounds how long minted tokens stay valid. Defaults to 24h.
	TokenTTL time.Duration
	Logger   zerolog.Logger
}

type Server struct {
	echo      *echo.Echo
	state     *state
	validate  *validator.Validate
	registry  *prometheus.Registry
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// New builds the mock with all routes registered.
func New(cfg Config) *Server {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	s := &Server{
		echo:      echo.New(),
		state:     newState(),
		validate:  validator.New(),
		registry:  prometheus.NewRegistry(),
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  ttl,
		log:       cfg.Logger,
	}
	s.echo.HideBanner = true

	s.echo.Use(echomiddleware.Recover())
	s.echo.Use(echomiddleware.RequestID())
	// A per-instance registry keeps parallel test servers from fighting
	// over the default one.
	s.echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "mockportal",
		Registerer: s.registry,
	}))

	s.routes()
	return s
}

// Echo exposes the underlying router, so tests can mount the mock on an
// httptest.Server and the binary can start it directly.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start serves on addr and blocks.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/health", s.handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.registry,
	}))

	api := e.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)
	api.GET("/auth/me", s.handleMe, s.requireAuth)

	api.GET("/jobs/", s.handleListJobs)
	api.GET("/jobs/search", s.handleSearchJobs)
	api.POST("/jobs/", s.handleCreateJob, s.requireAuth, requireRole("employer"))
	api.GET("/jobs/:id", s.handleGetJob)
	api.PUT("/jobs/:id", s.handleUpdateJob, s.requireAuth)
	api.DELETE("/jobs/:id", s.handleDeleteJob, s.requireAuth)

	apps := api.Group("/applications", s.requireAuth)
	apps.GET("/", s.handleListApplications)
	apps.POST("/", s.handleCreateApplication)
	apps.GET("/:id", s.handleGetApplication)

	api.POST("/resume/upload", s.handleUploadResume, s.requireAuth)
	api.POST("/resume/analyze/:id", s.handleAnalyzeResume, s.requireAuth)

	api.GET("/profile/user/:id", s.handleGetProfile)
	api.PUT("/profile/user/:id", s.handleUpdateProfile, s.requireAuth)

	api.GET("/reviews/", s.handleListReviews)
	api.POST("/reviews/", s.handleCreateReview, s.requireAuth)
	api.GET("/reviews/company/:id", s.handleCompanyReviews)
	api.GET("/reviews/company/:id/average", s.handleCompanyAverage)

	alerts := api.Group("/job-alerts", s.requireAuth)
	alerts.GET("/", s.handleListAlerts)
	alerts.POST("/", s.handleCreateAlert)
	alerts.PUT("/:id", s.handleUpdateAlert)
	alerts.DELETE("/:id", s.handleDeleteAlert)

	ai := api.Group("/ai", s.requireAuth)
	ai.POST("/analyze-resume", s.handleAIAnalyzeResume)
	ai.POST("/analyze-resume-file", s.handleAIAnalyzeResumeFile)
	ai.POST("/generate-cover-letter", s.handleAICoverLetter)
	ai.POST("/generate-cover-letter-file", s.handleAICoverLetterFile)
	ai.POST("/interview-questions", s.handleAIInterviewQuestions)
	ai.POST("/interview-questions-file", s.handleAIInterviewQuestionsFile)

	employer := api.Group("/employer", s.requireAuth, requireRole("employer"))
	employer.GET("/jobs", s.handleEmployerJobs)
	employer.GET("/applications", s.handleEmployerApplications)
	employer.GET("/stats", s.handleEmployerStats)

	admin := api.Group("/admin", s.requireAuth, requireRole("admin"))
	admin.GET("/users", s.handleAdminUsers)
	admin.GET("/jobs", s.handleAdminJobs)
	admin.GET("/stats", s.handleAdminStats)
	admin.DELETE("/users/:id", s.handleAdminDeleteUser)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
