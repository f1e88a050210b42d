package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type investmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

func (r *investmentRepository) Create(ctx context.Context, investment *models.Investment) error {
	if err := r.db.WithContext(ctx).Create(investment).Error; err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

func (r *investmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Investment, error) {
	var investment models.Investment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvestmentNotFound
		}
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return &investment, nil
}

func (r *investmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]models.Investment, int64, error) {
	page, pageSize = models.NormalizePage(page, pageSize)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count investments: %w", err)
	}

	var investments []models.Investment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&investments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list investments: %w", err)
	}

	return investments, total, nil
}

// ExecuteInTransaction commits when fn returns nil and rolls back otherwise.
// The transactional property repository has no cache; callers invalidate
// after commit.
func (r *investmentRepository) ExecuteInTransaction(ctx context.Context, fn func(InvestmentRepository, PropertyRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&investmentRepository{db: tx}, &propertyRepository{db: tx})
	})
}
