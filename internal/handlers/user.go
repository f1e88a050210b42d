package handlers

import (
	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/services/user"
	"github.com/JwadKadry/stake-invest/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetMe returns the authenticated user's profile and investment summary
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return apperrors.ErrAuthRequired
	}

	profile, err := h.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return utils.Success(c, profile)
}

// UpdateMe applies a partial profile update
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return apperrors.ErrAuthRequired
	}

	var patch models.ProfilePatch
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&patch); err != nil {
			return errInvalidBody.Wrap(err)
		}
	}

	profile, err := h.userService.UpdateProfile(c.UserContext(), userID, patch)
	if err != nil {
		return err
	}
	return utils.Success(c, profile)
}
