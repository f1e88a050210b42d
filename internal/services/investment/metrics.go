package investment

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordInvestment(string, time.Duration)      {}
func (n *NoopMetricsCollector) RecordInvestedVolume(decimal.Decimal, int64) {}
