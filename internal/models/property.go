package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyMixedUse    PropertyType = "mixed_use"
	PropertyIndustrial  PropertyType = "industrial"
)

type PropertyStatus string

const (
	PropertyDraft   PropertyStatus = "draft"
	PropertyListed  PropertyStatus = "listed"
	PropertyFunding PropertyStatus = "funding"
	PropertyFunded  PropertyStatus = "funded"
	PropertyClosed  PropertyStatus = "closed"
)

// Property is a fundable asset split into shares.
// AvailableShares never goes below zero.
type Property struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title                string          `gorm:"not null" json:"title"`
	Description          string          `json:"description"`
	Street               string          `json:"street"`
	City                 string          `gorm:"index" json:"city"`
	State                string          `json:"state"`
	ZipCode              string          `json:"zipCode"`
	Country              string          `json:"country"`
	PropertyType         PropertyType    `gorm:"type:varchar(32);index;not null" json:"propertyType"`
	TotalValue           decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"totalValue"`
	AvailableShares      int64           `gorm:"not null;check:available_shares >= 0" json:"availableShares"`
	SharePrice           decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"sharePrice"`
	MinInvestment        decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"minInvestment"`
	ExpectedAnnualReturn decimal.Decimal `gorm:"type:numeric(5,2)" json:"expectedAnnualReturn"`
	InvestmentTerm       int             `json:"investmentTerm"`
	Status               PropertyStatus  `gorm:"type:varchar(16);index;not null;default:'draft'" json:"status"`
	Images               pq.StringArray  `gorm:"type:text[]" json:"images"`
	CreatedAt            time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PropertyDraft
	}
	return nil
}

// PropertyFilter selects a page of listings. Empty Status/PropertyType match all.
type PropertyFilter struct {
	Page         int            `query:"page" validate:"omitempty,gte=1"`
	PageSize     int            `query:"pageSize" validate:"omitempty,gte=1,lte=100"`
	Status       PropertyStatus `query:"status" validate:"omitempty,oneof=draft listed funding funded closed"`
	PropertyType PropertyType   `query:"propertyType" validate:"omitempty,oneof=residential commercial mixed_use industrial"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// PropertyView is the API representation of a property.
type PropertyView struct {
	ID                   uuid.UUID       `json:"id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Address              Address         `json:"address"`
	PropertyType         PropertyType    `json:"propertyType"`
	TotalValue           decimal.Decimal `json:"totalValue"`
	AvailableShares      int64           `json:"availableShares"`
	SharePrice           decimal.Decimal `json:"sharePrice"`
	MinInvestment        decimal.Decimal `json:"minInvestment"`
	ExpectedAnnualReturn decimal.Decimal `json:"expectedAnnualReturn"`
	InvestmentTerm       int             `json:"investmentTerm"`
	FundedPercentage     decimal.Decimal `json:"fundedPercentage"`
	Status               PropertyStatus  `json:"status"`
	Images               []string        `json:"images"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

var hundred = decimal.NewFromInt(100)

// TotalShares is the number of shares the valuation splits into, or 0 when
// share price is not positive.
func (p *Property) TotalShares() int64 {
	if !p.SharePrice.IsPositive() {
		return 0
	}
	return p.TotalValue.Div(p.SharePrice).Round(0).IntPart()
}

// FundedPercentage is the share of the offering already subscribed, 0-100.
func (p *Property) FundedPercentage() decimal.Decimal {
	total := p.TotalShares()
	if total <= 0 {
		return decimal.Zero
	}
	sold := total - p.AvailableShares
	if sold <= 0 {
		return decimal.Zero
	}
	if sold >= total {
		return hundred
	}
	return decimal.NewFromInt(sold).Mul(hundred).Div(decimal.NewFromInt(total)).Round(2)
}

// View converts the row into its API representation.
func (p *Property) View() *PropertyView {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return &PropertyView{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address: Address{
			Street:  p.Street,
			City:    p.City,
			State:   p.State,
			ZipCode: p.ZipCode,
			Country: p.Country,
		},
		PropertyType:         p.PropertyType,
		TotalValue:           p.TotalValue,
		AvailableShares:      p.AvailableShares,
		SharePrice:           p.SharePrice,
		MinInvestment:        p.MinInvestment,
		ExpectedAnnualReturn: p.ExpectedAnnualReturn,
		InvestmentTerm:       p.InvestmentTerm,
		FundedPercentage:     p.FundedPercentage(),
		Status:               p.Status,
		Images:               images,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
