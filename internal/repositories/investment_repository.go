package repositories

import (
	"context"
	"errors"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
)

var ErrInvestmentNotFound = errors.New("investment not found")

// InvestmentRepository defines the interface for investment-related database operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *models.Investment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Investment, error)

	// ListByUser returns one page of the user's investments, newest first,
	// plus the user's total investment count
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Investment, int64, error)

	// ExecuteInTransaction runs fn with investment and property repositories
	// bound to one database transaction
	ExecuteInTransaction(ctx context.Context, fn func(InvestmentRepository, PropertyRepository) error) error
}
