package investment

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type service struct {
	investments repositories.InvestmentRepository
	properties  repositories.PropertyRepository
	logger      zerolog.Logger
	metrics     MetricsCollector
	now         func() time.Time
}

// Option customizes the service.
type Option func(*service)

// WithClock overrides the clock used for purchase dates.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new investment service
func NewService(
	investments repositories.InvestmentRepository,
	properties repositories.PropertyRepository,
	logger zerolog.Logger,
	metrics MetricsCollector,
	opts ...Option,
) Service {
	if investments == nil {
		panic("investment repository is required")
	}
	if properties == nil {
		panic("property repository is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	s := &service{
		investments: investments,
		properties:  properties,
		logger:      logger.With().Str("component", "investment_service").Logger(),
		metrics:     metrics,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.InvestmentView, error) {
	start := time.Now()
	outcome := OutcomeError
	defer func() {
		s.metrics.RecordInvestment(outcome, time.Since(start))
	}()

	logger := s.logger.With().
		Str("user_id", input.UserID.String()).
		Str("property_id", input.PropertyID.String()).
		Int64("shares", input.Shares).
		Logger()

	property, err := s.properties.GetByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			outcome = OutcomePropertyNotFound
			return nil, apperrors.ErrPropertyNotFound
		}
		logger.Error().Err(err).Msg("failed to load property")
		return nil, apperrors.Internal("Failed to create investment", err)
	}

	if input.Shares <= 0 {
		outcome = OutcomeInvalidShares
		return nil, apperrors.ErrInvalidShares
	}
	if input.Shares > property.AvailableShares {
		outcome = OutcomeInsufficientShares
		return nil, apperrors.ErrInsufficientShares
	}

	amount := property.SharePrice.Mul(decimal.NewFromInt(input.Shares))
	if amount.LessThan(property.MinInvestment) {
		outcome = OutcomeBelowMinimum
		return nil, apperrors.BelowMinimum(property.MinInvestment)
	}

	investment := &models.Investment{
		UserID:         input.UserID,
		PropertyID:     property.ID,
		Shares:         input.Shares,
		AmountInvested: amount,
		SharePrice:     property.SharePrice,
		Status:         models.InvestmentPending,
		PurchaseDate:   s.now().UTC(),
	}

	var remaining int64
	err = s.investments.ExecuteInTransaction(ctx, func(investments repositories.InvestmentRepository, properties repositories.PropertyRepository) error {
		if err := investments.Create(ctx, investment); err != nil {
			return err
		}
		left, err := properties.DecrementShares(ctx, property.ID, input.Shares)
		if err != nil {
			return err
		}
		remaining = left
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientShares) {
			// Another purchase took the shares between the read and the write.
			outcome = OutcomeInsufficientShares
			logger.Info().Msg("conditional share decrement lost the race")
			return nil, apperrors.ErrInsufficientShares
		}
		logger.Error().Err(err).Msg("investment transaction failed")
		return nil, apperrors.Internal("Failed to create investment", err)
	}

	if err := s.properties.InvalidateCache(ctx, property.ID); err != nil {
		logger.Warn().Err(err).Msg("failed to invalidate property cache")
	}

	// The loaded row may be stale; the decrement reports the stored count.
	updated := *property
	updated.AvailableShares = remaining

	outcome = OutcomeSuccess
	s.metrics.RecordInvestedVolume(amount, input.Shares)
	logger.Info().
		Str("investment_id", investment.ID.String()).
		Str("amount", amount.StringFixed(2)).
		Msg("investment created")

	return models.NewInvestmentView(investment, &updated), nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (models.Page[models.InvestmentView], error) {
	page, pageSize = models.NormalizePage(page, pageSize)

	investments, total, err := s.investments.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to list investments")
		return models.Page[models.InvestmentView]{}, apperrors.Internal("Failed to list investments", err)
	}

	views := make([]models.InvestmentView, 0, len(investments))
	for i := range investments {
		property, err := s.lookupProperty(ctx, investments[i].PropertyID)
		if err != nil {
			return models.Page[models.InvestmentView]{}, err
		}
		views = append(views, *models.NewInvestmentView(&investments[i], property))
	}

	return models.NewPage(views, total, page, pageSize), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*models.InvestmentView, error) {
	investment, err := s.investments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInvestmentNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("investment_id", id.String()).Msg("failed to get investment")
		return nil, apperrors.Internal("Failed to get investment", err)
	}

	property, err := s.lookupProperty(ctx, investment.PropertyID)
	if err != nil {
		return nil, err
	}
	return models.NewInvestmentView(investment, property), nil
}

// lookupProperty returns nil when the referenced property no longer exists.
func (s *service) lookupProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("property_id", id.String()).Msg("failed to load property")
		return nil, apperrors.Internal("Failed to load property", err)
	}
	return property, nil
}
