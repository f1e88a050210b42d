package handlers

import (
	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/services/property"
	"github.com/JwadKadry/stake-invest/internal/utils"
	"github.com/JwadKadry/stake-invest/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	propertyService property.Service
}

func NewPropertyHandler(propertyService property.Service) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// List returns a page of listings filtered by status and propertyType
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	var filter models.PropertyFilter
	if err := c.QueryParser(&filter); err != nil {
		return apperrors.Validation("Invalid query parameters").Wrap(err)
	}
	if err := validation.Struct(filter); err != nil {
		return err
	}

	page, err := h.propertyService.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return utils.Success(c, page)
}

// Get returns one listing
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	// A malformed id cannot name an existing property.
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.ErrPropertyNotFound
	}

	view, err := h.propertyService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if view == nil {
		return apperrors.ErrPropertyNotFound
	}
	return utils.Success(c, view)
}
