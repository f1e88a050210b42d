// Package main is the entry point for the API server.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JwadKadry/stake-invest/internal/config"
	"github.com/JwadKadry/stake-invest/internal/handlers"
	"github.com/JwadKadry/stake-invest/internal/logging"
	"github.com/JwadKadry/stake-invest/internal/metrics"
	"github.com/JwadKadry/stake-invest/internal/repositories"
	"github.com/JwadKadry/stake-invest/internal/repositories/cache"
	"github.com/JwadKadry/stake-invest/internal/routes"
	"github.com/JwadKadry/stake-invest/internal/services/auth"
	"github.com/JwadKadry/stake-invest/internal/services/investment"
	"github.com/JwadKadry/stake-invest/internal/services/property"
	"github.com/JwadKadry/stake-invest/internal/services/user"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// main initializes and starts the HTTP server.
// It performs the following setup:
// - Loads configuration
// - Initializes database connection
// - Sets up dependency injection
// - Configures routes
// - Starts the HTTP server
func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.NewDB(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			logger.Warn().Err(err).Msg("failed to close database connection")
		}
	}()

	if err := repositories.Migrate(db); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	go logPoolStats(ctx, sqlDB, logger)

	m := metrics.New()
	if err := m.RegisterDB(sqlDB); err != nil {
		logger.Warn().Err(err).Msg("failed to register database metrics")
	}

	checks := map[string]handlers.HealthCheck{
		"database": sqlDB.PingContext,
	}

	// The property repository runs uncached unless Redis is enabled.
	var propertyCache repositories.PropertyCache
	if cfg.Redis.Enabled {
		cacheService := cache.NewCacheService(cache.NewRedisClient(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.TTL)
		defer func() {
			if err := cacheService.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close redis connection")
			}
		}()

		if err := cacheService.HealthCheck(ctx); err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, property cache disabled")
		} else {
			logger.Info().Str("host", cfg.Redis.Host).Dur("ttl", cfg.Redis.TTL).Msg("property cache enabled")
			propertyCache = cacheService
			checks["redis"] = cacheService.HealthCheck
		}
	}

	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db, propertyCache)
	investmentRepo := repositories.NewInvestmentRepository(db)

	app := routes.NewApp(routes.Dependencies{
		Config:            cfg,
		Logger:            logger,
		Metrics:           m,
		AuthService:       auth.NewService(userRepo, cfg.Auth, logger),
		UserService:       user.NewService(userRepo, logger),
		PropertyService:   property.NewService(propertyRepo, logger),
		InvestmentService: investment.NewService(investmentRepo, propertyRepo, logger, m),
		HealthChecks:      checks,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// logPoolStats periodically logs connection pool statistics.
func logPoolStats(ctx context.Context, db *sql.DB, logger zerolog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := db.Stats()
			logger.Debug().
				Int("open", stats.OpenConnections).
				Int("idle", stats.Idle).
				Int("in_use", stats.InUse).
				Int64("wait_count", stats.WaitCount).
				Dur("wait_duration", stats.WaitDuration).
				Msg("db pool stats")
		}
	}
}
