package investment

import (
	"context"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
)

// Service defines the investment service interface
type Service interface {
	// Create buys shares in a property for a user.
	Create(ctx context.Context, input CreateInput) (*models.InvestmentView, error)

	// ListByUser returns one page of the user's investments, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (models.Page[models.InvestmentView], error)

	// GetByID returns nil without an error when the investment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.InvestmentView, error)
}
