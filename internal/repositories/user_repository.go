package repositories

import (
	"context"
	"errors"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create creates a new user in the database
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by their ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail retrieves a user by their email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateFields writes only the given columns
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// GetInvestmentSummary aggregates the user's investments in one query
	GetInvestmentSummary(ctx context.Context, userID uuid.UUID) (*models.InvestmentSummary, error)
}
