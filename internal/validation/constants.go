package validation

const (
	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	MaxPhoneLength = 32
)
