package investment

// Creation outcomes reported to MetricsCollector.
const (
	OutcomeSuccess            = "success"
	OutcomePropertyNotFound   = "property_not_found"
	OutcomeInvalidShares      = "invalid_shares"
	OutcomeInsufficientShares = "insufficient_shares"
	OutcomeBelowMinimum       = "below_minimum"
	OutcomeError              = "error"
)
