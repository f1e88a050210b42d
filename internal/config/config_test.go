package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STAKE_TEST_VALUE", "abc")
	assert.Equal(t, "abc", GetEnv("STAKE_TEST_VALUE", "default"))
	assert.Equal(t, "default", GetEnv("STAKE_TEST_MISSING", "default"))

	t.Setenv("STAKE_TEST_EMPTY", "")
	assert.Equal(t, "default", GetEnv("STAKE_TEST_EMPTY", "default"))
}

func TestTypedEnvHelpers(t *testing.T) {
	t.Setenv("STAKE_TEST_INT", "42")
	t.Setenv("STAKE_TEST_BAD_INT", "forty-two")
	t.Setenv("STAKE_TEST_BOOL", "true")
	t.Setenv("STAKE_TEST_DURATION", "90s")
	t.Setenv("STAKE_TEST_BAD_DURATION", "7d")

	assert.Equal(t, 42, GetIntEnv("STAKE_TEST_INT", 1))
	assert.Equal(t, 1, GetIntEnv("STAKE_TEST_BAD_INT", 1))
	assert.True(t, GetBoolEnv("STAKE_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetDurationEnv("STAKE_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetDurationEnv("STAKE_TEST_BAD_DURATION", time.Minute))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.AccessTTL)
	assert.Equal(t, 100, cfg.DB.MaxOpenConns)
	assert.False(t, cfg.IsProduction())
}

func TestValidateJWTSecret(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{name: "default secret in development", env: "development", secret: DefaultJWTSecret},
		{name: "default secret in production", env: "production", secret: DefaultJWTSecret, wantErr: true},
		{name: "empty secret in production", env: "production", secret: "", wantErr: true},
		{name: "custom secret in production", env: "production", secret: "a-long-random-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Env: tt.env, Auth: AuthConfig{JWTSecret: tt.secret}}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadProductionWithDefaultSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Error(t, cfg.Validate())
}
