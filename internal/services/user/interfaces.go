package user

import (
	"context"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
)

type Service interface {
	// GetProfile returns the user with their investment summary.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	// UpdateProfile writes only the fields present in patch and returns the
	// refreshed profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserProfile, error)
}
