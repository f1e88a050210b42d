package handlers

import (
	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/services/auth"
	"github.com/JwadKadry/stake-invest/internal/utils"
	"github.com/JwadKadry/stake-invest/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var errInvalidBody = apperrors.Validation("Invalid request body")

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an account and returns the user with a token pair
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return errInvalidBody.Wrap(err)
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	result, err := h.authService.Register(c.UserContext(), input)
	if err != nil {
		return err
	}
	return utils.Created(c, result)
}

// Login handles user authentication and returns JWT tokens
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return errInvalidBody.Wrap(err)
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	result, err := h.authService.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return err
	}
	return utils.Success(c, result)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return errInvalidBody.Wrap(err)
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	result, err := h.authService.Refresh(c.UserContext(), input.RefreshToken)
	if err != nil {
		return err
	}
	return utils.Success(c, result)
}
