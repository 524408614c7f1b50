package handler

import (
	"context"
	"time"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger is satisfied by the database and cache clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "skipped", "cache": "skipped"}
	healthy := true
	if h.db != nil {
		status["database"] = "up"
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "down"
			healthy = false
		}
	}
	if h.cache != nil {
		status["cache"] = "up"
		if err := h.cache.Ping(ctx); err != nil {
			// the recommendation cache is optional, a dead redis only degrades
			status["cache"] = "down"
		}
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy", status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
