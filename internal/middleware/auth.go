// Package middleware provides HTTP middleware components for the application.
// It includes authentication, request context and request logging middleware
// that can be used with the fiber web framework.
package middleware

import (
	"strings"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// TokenParser validates access tokens.
type TokenParser interface {
	ParseAccessToken(token string) (*models.UserClaims, error)
}

// AuthMiddleware handles JWT token validation and user authentication.
type AuthMiddleware struct {
	tokens TokenParser
}

func NewAuthMiddleware(tokens TokenParser) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Handler requires an `Authorization: Bearer <token>` header carrying a valid
// access token and stores the claims and user id in the request locals.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.ErrAuthRequired
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return apperrors.ErrAuthRequired
	}

	claims, err := m.tokens.ParseAccessToken(strings.TrimSpace(tokenString))
	if err != nil {
		zerolog.Ctx(c.UserContext()).Debug().Err(err).Msg("token validation failed")
		return apperrors.ErrInvalidToken
	}

	c.Locals(utils.LocalsClaims, claims)
	c.Locals(utils.LocalsUserID, claims.UserID)

	return c.Next()
}
