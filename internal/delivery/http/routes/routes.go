package routes

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health            *handler.HealthHandler
	JobRecommendation *handler.JobRecommendationHandler
	SavedJob          *handler.SavedJobHandler
}

type Registry struct {
	handlers Handlers
	auth     *middleware.AuthMiddleware
}

func NewRegistry(h Handlers, jwtSvc jwt.Service) *Registry {
	return &Registry{handlers: h, auth: middleware.NewAuthMiddleware(jwtSvc)}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.handlers.Health == nil {
		return
	}
	r.handlers.Health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")
	seekers := v1.Group("", r.auth.Middleware(), middleware.RequireRole(jwt.RoleSeeker))

	if r.handlers.JobRecommendation != nil {
		r.handlers.JobRecommendation.RegisterRoutes(seekers)
	}
	if r.handlers.SavedJob != nil {
		r.handlers.SavedJob.RegisterRoutes(seekers)
	}
}
