package repositories

import (
	"context"
	"errors"

	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories/cache"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrInsufficientShares = errors.New("insufficient shares available")
)

// PropertyRepository defines the interface for property-related database operations
type PropertyRepository interface {
	// GetByID retrieves a property by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)

	// List returns one page of properties matching the filter, newest first,
	// plus the unpaginated count
	List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int64, error)

	// Create inserts a new property
	Create(ctx context.Context, property *models.Property) error

	// DecrementShares subtracts shares only if enough remain and returns the
	// shares left afterwards
	DecrementShares(ctx context.Context, id uuid.UUID, shares int64) (int64, error)

	// InvalidateCache drops any cached copy of the property
	InvalidateCache(ctx context.Context, id uuid.UUID) error

	// Count returns the number of stored properties
	Count(ctx context.Context) (int64, error)
}

// PropertyCache is the read-through cache used by the property repository.
// GetProperty returns (nil, nil) on a miss. SetProperty stores the row only
// while the version read by PropertyVersion is current; InvalidateProperty
// moves the version on.
type PropertyCache interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	PropertyVersion(ctx context.Context, id uuid.UUID) (int64, error)
	SetProperty(ctx context.Context, property *models.Property, version int64) (bool, error)
	InvalidateProperty(ctx context.Context, id uuid.UUID) error
}

var _ PropertyCache = (*cache.CacheService)(nil)
