package investment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInput is a purchase request from an authenticated user.
type CreateInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Shares     int64
}

// MetricsCollector defines the interface for collecting investment metrics
type MetricsCollector interface {
	RecordInvestment(outcome string, duration time.Duration)
	RecordInvestedVolume(amount decimal.Decimal, shares int64)
}
