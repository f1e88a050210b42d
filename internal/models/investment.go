package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentConfirmed InvestmentStatus = "confirmed"
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// Investment is a user's purchase of shares in a property. AmountInvested and
// SharePrice are snapshots taken at purchase time.
type Investment struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;index;not null" json:"userId"`
	PropertyID     uuid.UUID        `gorm:"type:uuid;index;not null" json:"propertyId"`
	Shares         int64            `gorm:"not null;check:shares > 0" json:"shares"`
	AmountInvested decimal.Decimal  `gorm:"type:numeric(15,2);not null" json:"amountInvested"`
	SharePrice     decimal.Decimal  `gorm:"type:numeric(15,2);not null" json:"sharePrice"`
	Status         InvestmentStatus `gorm:"type:varchar(16);index;not null;default:'pending'" json:"status"`
	PurchaseDate   time.Time        `gorm:"not null" json:"purchaseDate"`
	ExpectedReturn *decimal.Decimal `gorm:"type:numeric(15,2)" json:"expectedReturn,omitempty"`
	ActualReturn   *decimal.Decimal `gorm:"type:numeric(15,2)" json:"actualReturn,omitempty"`
	CreatedAt      time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Property *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (Investment) TableName() string {
	return "investments"
}

func (i *Investment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InvestmentPending
	}
	return nil
}

// CreateInvestmentInput is the purchase request body. Pointers let the handler
// tell a missing field from a zero one.
type CreateInvestmentInput struct {
	PropertyID *string `json:"propertyId" validate:"required,uuid"`
	Shares     *int64  `json:"shares" validate:"required,gt=0"`
}

// InvestmentView joins an investment with its property. Property is nil when
// the referenced row no longer exists.
type InvestmentView struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"userId"`
	PropertyID     uuid.UUID        `json:"propertyId"`
	Shares         int64            `json:"shares"`
	AmountInvested decimal.Decimal  `json:"amountInvested"`
	SharePrice     decimal.Decimal  `json:"sharePrice"`
	Status         InvestmentStatus `json:"status"`
	PurchaseDate   time.Time        `json:"purchaseDate"`
	ExpectedReturn *decimal.Decimal `json:"expectedReturn,omitempty"`
	ActualReturn   *decimal.Decimal `json:"actualReturn,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Property       *PropertyView    `json:"property"`
}

// NewInvestmentView composes the read model. property may be nil.
func NewInvestmentView(inv *Investment, property *Property) *InvestmentView {
	view := &InvestmentView{
		ID:             inv.ID,
		UserID:         inv.UserID,
		PropertyID:     inv.PropertyID,
		Shares:         inv.Shares,
		AmountInvested: inv.AmountInvested,
		SharePrice:     inv.SharePrice,
		Status:         inv.Status,
		PurchaseDate:   inv.PurchaseDate,
		ExpectedReturn: inv.ExpectedReturn,
		ActualReturn:   inv.ActualReturn,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	if property != nil {
		view.Property = property.View()
	}
	return view
}
