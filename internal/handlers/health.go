package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports an error when a dependency is unreachable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	now    func() time.Time
}

// NewHealthHandler builds the liveness handler. checks may be empty.
func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		now:    time.Now,
	}
}

// Health answers {status, timestamp}; status is "degraded" with a 503 when a
// dependency check fails.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	}

	if len(h.checks) == 0 {
		return c.JSON(body)
	}

	services := fiber.Map{}
	status := fiber.StatusOK
	for name, check := range h.checks {
		if err := check(c.UserContext()); err != nil {
			services[name] = "unavailable"
			body["status"] = "degraded"
			status = fiber.StatusServiceUnavailable
			continue
		}
		services[name] = "connected"
	}
	body["services"] = services

	return c.Status(status).JSON(body)
}
