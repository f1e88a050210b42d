package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// RequestIDKey is where the requestid middleware stores the id.
const RequestIDKey = "requestid"

// RequestID returns the id assigned to the current request.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}

// RequestContext gives each request a user context that carries a
// request-scoped logger and is cancelled after timeout.
func RequestContext(logger zerolog.Logger, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqLogger := logger.With().Str("request_id", RequestID(c)).Logger()
		ctx := reqLogger.WithContext(c.UserContext())

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}
