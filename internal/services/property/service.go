// Package property serves property listings to investors.
package property

import (
	"context"
	"errors"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type service struct {
	repo   repositories.PropertyRepository
	logger zerolog.Logger
}

// NewService creates a new property service
func NewService(repo repositories.PropertyRepository, logger zerolog.Logger) Service {
	if repo == nil {
		panic("property repository is required")
	}

	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "property_service").Logger(),
	}
}

func (s *service) List(ctx context.Context, filter models.PropertyFilter) (models.Page[models.PropertyView], error) {
	filter.Page, filter.PageSize = models.NormalizePage(filter.Page, filter.PageSize)

	properties, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list properties")
		return models.Page[models.PropertyView]{}, apperrors.Internal("Failed to list properties", err)
	}

	views := make([]models.PropertyView, 0, len(properties))
	for i := range properties {
		views = append(views, *properties[i].View())
	}

	return models.NewPage(views, total, filter.Page, filter.PageSize), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.PropertyView, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("property_id", id.String()).Msg("failed to get property")
		return nil, apperrors.Internal("Failed to get property", err)
	}
	return property.View(), nil
}
