package handlers

import (
	"strings"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/services/investment"
	"github.com/JwadKadry/stake-invest/internal/utils"
	"github.com/JwadKadry/stake-invest/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errMissingInvestmentFields = apperrors.Validation("Property ID and shares are required")

type InvestmentHandler struct {
	investmentService investment.Service
}

func NewInvestmentHandler(investmentService investment.Service) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Create buys shares for the authenticated user
func (h *InvestmentHandler) Create(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return apperrors.ErrAuthRequired
	}

	var input models.CreateInvestmentInput
	if err := c.BodyParser(&input); err != nil {
		return errInvalidBody.Wrap(err)
	}
	// Zero shares counts as missing.
	if input.PropertyID == nil || strings.TrimSpace(*input.PropertyID) == "" || input.Shares == nil || *input.Shares == 0 {
		return errMissingInvestmentFields
	}
	if err := validation.Struct(input); err != nil {
		return err
	}
	propertyID, err := uuid.Parse(*input.PropertyID)
	if err != nil {
		return apperrors.Validation("propertyId must be a valid id").Wrap(err)
	}

	view, err := h.investmentService.Create(c.UserContext(), investment.CreateInput{
		UserID:     userID,
		PropertyID: propertyID,
		Shares:     *input.Shares,
	})
	if err != nil {
		return err
	}
	return utils.Created(c, view)
}

// List returns a page of the authenticated user's investments
func (h *InvestmentHandler) List(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return apperrors.ErrAuthRequired
	}

	page := c.QueryInt("page", models.DefaultPage)
	pageSize := c.QueryInt("pageSize", models.DefaultPageSize)

	result, err := h.investmentService.ListByUser(c.UserContext(), userID, page, pageSize)
	if err != nil {
		return err
	}
	return utils.Success(c, result)
}

// Get returns one of the authenticated user's investments
func (h *InvestmentHandler) Get(c *fiber.Ctx) error {
	userID, err := utils.GetUserID(c)
	if err != nil {
		return apperrors.ErrAuthRequired
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperrors.ErrInvestmentNotFound
	}

	view, err := h.investmentService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	// Other users' investments are reported as missing.
	if view == nil || view.UserID != userID {
		return apperrors.ErrInvestmentNotFound
	}
	return utils.Success(c, view)
}
