// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultJWTSecret is the development signing key used when JWT_SECRET is unset.
const DefaultJWTSecret = "your-secret-key"

// Config holds every setting the server needs at startup.
type Config struct {
	Env            string
	Port           string
	LogLevel       string
	RequestTimeout time.Duration
	CORSOrigins    string

	// Requests allowed per client IP on /api/auth within AuthRateWindow.
	AuthRateLimit  int
	AuthRateWindow time.Duration

	DB    DBConfig
	Redis RedisConfig
	Auth  AuthConfig
}

// DBConfig holds the Postgres connection and pool settings.
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig holds the property cache settings.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file found")
	}
}

// Load reads the full configuration, falling back to defaults.
func Load() Config {
	LoadEnv()

	return Config{
		Env:            GetEnv("ENV", "development"),
		Port:           GetEnv("PORT", "3001"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		RequestTimeout: GetDurationEnv("REQUEST_TIMEOUT", 15*time.Second),
		CORSOrigins:    GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AuthRateLimit:  GetIntEnv("AUTH_RATE_LIMIT", 10),
		AuthRateWindow: GetDurationEnv("AUTH_RATE_WINDOW", time.Minute),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "stake_invest"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  GetBoolEnv("REDIS_ENABLED", false),
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
			TTL:      GetDurationEnv("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			JWTSecret:  GetEnv("JWT_SECRET", DefaultJWTSecret),
			AccessTTL:  GetDurationEnv("JWT_EXPIRES_IN", 7*24*time.Hour),
			RefreshTTL: GetDurationEnv("REFRESH_EXPIRES_IN", 30*24*time.Hour),
		},
	}
}

// Validate rejects settings that must not reach production.
func (c Config) Validate() error {
	if c.IsProduction() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DefaultJWTSecret) {
		return errors.New("JWT_SECRET must be set to a non-default value in production")
	}
	return nil
}

// IsProduction checks if the app runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv parses a Go duration ("15m", "168h") or returns the default.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Warn().Str("key", key).Str("value", val).Msg("invalid duration, using default")
	}
	return defaultVal
}
