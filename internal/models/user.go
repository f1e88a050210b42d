package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// KYCStatus is the know-your-customer verification state of a user.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending"
	KYCVerified KYCStatus = "verified"
	KYCRejected KYCStatus = "rejected"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	Phone        *string    `json:"phone,omitempty"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"dateOfBirth,omitempty"`
	KYCStatus    KYCStatus  `gorm:"type:varchar(16);not null;default:'pending'" json:"kycStatus"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an id and the default KYC state.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.KYCStatus == "" {
		u.KYCStatus = KYCPending
	}
	return nil
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfilePatch carries a partial profile update. Absent fields are left alone;
// a JSON null on phone or dateOfBirth clears the column.
type ProfilePatch struct {
	FirstName   nullable.Nullable[string] `json:"firstName"`
	LastName    nullable.Nullable[string] `json:"lastName"`
	Phone       nullable.Nullable[string] `json:"phone"`
	DateOfBirth nullable.Nullable[string] `json:"dateOfBirth"`
}

// Empty reports whether no field was supplied.
func (p ProfilePatch) Empty() bool {
	return !p.FirstName.IsSpecified() && !p.LastName.IsSpecified() &&
		!p.Phone.IsSpecified() && !p.DateOfBirth.IsSpecified()
}

// InvestmentSummary is the per-user aggregate shown on the profile.
type InvestmentSummary struct {
	TotalInvested           decimal.Decimal `json:"totalInvested"`
	TotalReturns            decimal.Decimal `json:"totalReturns"`
	ActiveInvestmentsAmount decimal.Decimal `json:"activeInvestmentsAmount"`
	ActiveInvestments       int64           `json:"activeInvestments"`
	CompletedInvestments    int64           `json:"completedInvestments"`
}

// UserProfile is the user read model returned by /api/users/me.
type UserProfile struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Phone       *string    `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	KYCStatus   KYCStatus  `json:"kycStatus"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	InvestmentSummary
}
