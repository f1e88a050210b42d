package errors

import "github.com/shopspring/decimal"

var (
	ErrPropertyNotFound = &AppError{
		Kind:    KindNotFound,
		Code:    "PROPERTY_NOT_FOUND",
		Message: "Property not found",
	}
	ErrInvestmentNotFound = &AppError{
		Kind:    KindNotFound,
		Code:    "INVESTMENT_NOT_FOUND",
		Message: "Investment not found",
	}
	ErrUserNotFound = &AppError{
		Kind:    KindNotFound,
		Code:    "USER_NOT_FOUND",
		Message: "User not found",
	}
	ErrInsufficientShares = &AppError{
		Kind:    KindValidation,
		Code:    "INSUFFICIENT_SHARES",
		Message: "Not enough shares available",
	}
	ErrBelowMinimum = &AppError{
		Kind:    KindValidation,
		Code:    "BELOW_MINIMUM_INVESTMENT",
		Message: "Investment is below the minimum",
	}
	ErrInvalidShares = &AppError{
		Kind:    KindValidation,
		Code:    "INVALID_SHARES",
		Message: "Shares must be a positive integer",
	}
	ErrEmailTaken = &AppError{
		Kind:    KindConflict,
		Code:    "EMAIL_TAKEN",
		Message: "User with this email already exists",
	}
	ErrInvalidCredentials = &AppError{
		Kind:    KindUnauthorized,
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid credentials",
	}
	ErrAuthRequired = &AppError{
		Kind:    KindUnauthorized,
		Code:    "AUTH_REQUIRED",
		Message: "Authentication required",
	}
	ErrInvalidToken = &AppError{
		Kind:    KindUnauthorized,
		Code:    "INVALID_TOKEN",
		Message: "Invalid token",
	}
)

// BelowMinimum builds the minimum-investment error with the amount in its message.
func BelowMinimum(min decimal.Decimal) *AppError {
	e := *ErrBelowMinimum
	e.Message = "Minimum investment is " + min.String()
	return &e
}
