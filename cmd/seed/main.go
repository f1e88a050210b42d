// Command seed inserts demo properties into an empty database.
package main

import (
	"context"
	"os"

	"github.com/JwadKadry/stake-invest/internal/config"
	"github.com/JwadKadry/stake-invest/internal/logging"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func demoProperties() []models.Property {
	return []models.Property{
		{
			Title:                "Riverside Lofts",
			Description:          "Twelve renovated loft apartments next to the river promenade.",
			Street:               "18 Quay Street",
			City:                 "Porto",
			Country:              "Portugal",
			ZipCode:              "4050-111",
			PropertyType:         models.PropertyResidential,
			TotalValue:           decimal.NewFromInt(1200000),
			AvailableShares:      12000,
			SharePrice:           decimal.NewFromInt(100),
			MinInvestment:        decimal.NewFromInt(500),
			ExpectedAnnualReturn: decimal.RequireFromString("6.50"),
			InvestmentTerm:       60,
			Status:               models.PropertyFunding,
			Images:               pq.StringArray{"https://images.stake-invest.dev/riverside-1.jpg"},
		},
		{
			Title:                "Harbour Office Park",
			Description:          "Grade A office space leased to three long-term tenants.",
			Street:               "2 Dock Road",
			City:                 "Lisbon",
			Country:              "Portugal",
			ZipCode:              "1200-109",
			PropertyType:         models.PropertyCommercial,
			TotalValue:           decimal.NewFromInt(4500000),
			AvailableShares:      18000,
			SharePrice:           decimal.NewFromInt(250),
			MinInvestment:        decimal.NewFromInt(1000),
			ExpectedAnnualReturn: decimal.RequireFromString("7.25"),
			InvestmentTerm:       84,
			Status:               models.PropertyListed,
		},
		{
			Title:                "Northgate Logistics Hub",
			Description:          "Cross-dock warehouse on the ring road.",
			Street:               "Industrial Estate Lot 7",
			City:                 "Braga",
			Country:              "Portugal",
			PropertyType:         models.PropertyIndustrial,
			TotalValue:           decimal.NewFromInt(2800000),
			AvailableShares:      5600,
			SharePrice:           decimal.NewFromInt(500),
			MinInvestment:        decimal.NewFromInt(2500),
			ExpectedAnnualReturn: decimal.RequireFromString("8.00"),
			InvestmentTerm:       120,
			Status:               models.PropertyFunding,
		},
	}
}

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Pretty: !cfg.IsProduction()})

	db, err := repositories.NewDB(cfg.DB, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			logger.Warn().Err(err).Msg("failed to close database connection")
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		logger.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}

	ctx := logger.WithContext(context.Background())
	properties := repositories.NewPropertyRepository(db, nil)

	count, err := properties.Count(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to count properties")
		os.Exit(1)
	}
	if count > 0 {
		logger.Info().Int64("count", count).Msg("properties already present, nothing to seed")
		return
	}

	for _, p := range demoProperties() {
		p := p
		if err := properties.Create(ctx, &p); err != nil {
			logger.Error().Err(err).Str("title", p.Title).Msg("failed to create property")
			os.Exit(1)
		}
		logger.Info().Str("id", p.ID.String()).Str("title", p.Title).Msg("property created")
	}
}
