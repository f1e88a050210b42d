package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		updates[column] = value
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumns(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

type investmentSummaryRow struct {
	TotalInvested  decimal.Decimal
	ActiveAmount   decimal.Decimal
	ActiveCount    int64
	CompletedCount int64
}

func (r *userRepository) GetInvestmentSummary(ctx context.Context, userID uuid.UUID) (*models.InvestmentSummary, error) {
	var row investmentSummaryRow
	err := r.db.WithContext(ctx).
		Model(&models.Investment{}).
		Select(`COALESCE(SUM(amount_invested), 0) AS total_invested,
			COALESCE(SUM(CASE WHEN status = ? THEN amount_invested ELSE 0 END), 0) AS active_amount,
			COUNT(CASE WHEN status = ? THEN 1 END) AS active_count,
			COUNT(CASE WHEN status = ? THEN 1 END) AS completed_count`,
			models.InvestmentActive, models.InvestmentActive, models.InvestmentCompleted).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize investments: %w", err)
	}

	return &models.InvestmentSummary{
		TotalInvested:           row.TotalInvested,
		TotalReturns:            decimal.Zero,
		ActiveInvestmentsAmount: row.ActiveAmount,
		ActiveInvestments:       row.ActiveCount,
		CompletedInvestments:    row.CompletedCount,
	}, nil
}
