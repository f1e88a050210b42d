package utils

import (
	"errors"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the authenticate middleware.
const (
	LocalsClaims = "claims"
	LocalsUserID = "userID"
)

// GetUserClaims extracts the user claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals(LocalsClaims)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.UserClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetUserID returns the authenticated user's id.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(LocalsUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.New("user id not found in context")
	}
	return id, nil
}
