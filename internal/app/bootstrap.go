package app

import (
	"fmt"
	"strings"

	"jobboard/internal/config"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

// Usecases are the application services the HTTP layer is built on.
type Usecases struct {
	Recommendations usecase.RecommendationUsecase
	SavedJobs       usecase.SavedJobUsecase
}

func New(cfg config.Config, uc Usecases, health *handler.HealthHandler, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	routes.NewRegistry(routes.Handlers{
		Health:            health,
		JobRecommendation: handler.NewJobRecommendationHandler(uc.Recommendations),
		SavedJob:          handler.NewSavedJobHandler(uc.SavedJobs),
	}, jwtSvc).Register(f)

	return &App{Fiber: f}
}

// NewUsecases wires the Postgres repositories and the Redis cache into the usecases.
func NewUsecases(c *Container) Usecases {
	postings := repository.NewPostgresPostingRepository(c.DB)
	seekers := repository.NewPostgresSeekerProfileRepository(c.DB)
	saved := repository.NewPostgresSavedJobRepository(c.DB)

	var recCache usecase.RecommendationCache
	if c.Cache != nil {
		recCache = c.Cache
	}

	return Usecases{
		Recommendations: usecase.NewRecommendationUsecase(postings, seekers, saved, recCache, usecase.RecommendationOptions{
			DefaultLimit: c.Config.Recommendation.DashboardLimit,
			CacheTTL:     c.Config.Recommendation.CacheTTL,
		}, c.Logger),
		SavedJobs: usecase.NewSavedJobUsecase(postings, seekers, saved, recCache, c.Logger),
	}
}

func Bootstrap(c *Container) *App {
	var cachePinger handler.Pinger
	if c.Cache != nil {
		cachePinger = c.Cache
	}
	health := handler.NewHealthHandler(c.DB, cachePinger)
	return New(c.Config, NewUsecases(c), health, c.Logger)
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	accessLog := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessLog.Middleware())
	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
