package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type propertyRepository struct {
	db    *gorm.DB
	cache PropertyCache
}

// NewPropertyRepository creates a new instance of PropertyRepository.
// cache may be nil, in which case every read goes to the database.
func NewPropertyRepository(db *gorm.DB, cache PropertyCache) PropertyRepository {
	return &propertyRepository{
		db:    db,
		cache: cache,
	}
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	logger := zerolog.Ctx(ctx)

	// The version is read before the database so a refill racing an
	// invalidation is rejected by the cache.
	cacheable := false
	var version int64
	if r.cache != nil {
		cached, err := r.cache.GetProperty(ctx, id)
		if err != nil {
			logger.Warn().Err(err).Str("property_id", id.String()).Msg("property cache read failed")
		} else if cached != nil {
			return cached, nil
		}

		if version, err = r.cache.PropertyVersion(ctx, id); err != nil {
			logger.Warn().Err(err).Str("property_id", id.String()).Msg("property cache version read failed")
		} else {
			cacheable = true
		}
	}

	var property models.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if cacheable {
		stored, err := r.cache.SetProperty(ctx, &property, version)
		if err != nil {
			logger.Warn().Err(err).Str("property_id", id.String()).Msg("failed to cache property")
		} else if !stored {
			logger.Debug().Str("property_id", id.String()).Msg("property changed while loading, not cached")
		}
	}

	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int64, error) {
	filter.Page, filter.PageSize = models.NormalizePage(filter.Page, filter.PageSize)

	query := r.db.WithContext(ctx).Model(&models.Property{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", filter.PropertyType)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	var properties []models.Property
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&properties).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, total, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *propertyRepository) DecrementShares(ctx context.Context, id uuid.UUID, shares int64) (int64, error) {
	var updated models.Property
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "available_shares"}}}).
		Where("id = ? AND available_shares >= ?", id, shares).
		Update("available_shares", gorm.Expr("available_shares - ?", shares))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to decrement shares: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrInsufficientShares
	}

	if err := r.InvalidateCache(ctx, id); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("property_id", id.String()).Msg("failed to invalidate property cache")
	}
	return updated.AvailableShares, nil
}

func (r *propertyRepository) InvalidateCache(ctx context.Context, id uuid.UUID) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.InvalidateProperty(ctx, id)
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Property{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}
