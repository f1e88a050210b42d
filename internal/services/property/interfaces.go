package property

import (
	"context"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
)

// Service exposes the read side of property listings.
type Service interface {
	// List returns one page of listings, newest first.
	List(ctx context.Context, filter models.PropertyFilter) (models.Page[models.PropertyView], error)

	// GetByID returns nil without an error when the property does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyView, error)
}
