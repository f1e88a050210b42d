// Package auth registers users, checks credentials and issues JWT token pairs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JwadKadry/stake-invest/internal/config"
	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"
	"github.com/JwadKadry/stake-invest/internal/validation"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for stored passwords.
const PasswordCost = bcrypt.DefaultCost

type service struct {
	userRepo repositories.UserRepository
	cfg      config.AuthConfig
	logger   zerolog.Logger
	now      func() time.Time
}

// Option customizes the service.
type Option func(*service)

// WithClock overrides the clock used to issue and validate tokens.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(userRepo repositories.UserRepository, cfg config.AuthConfig, logger zerolog.Logger, opts ...Option) Service {
	if userRepo == nil {
		panic("user repository is required")
	}
	if cfg.JWTSecret == "" {
		panic("JWT secret is required")
	}

	s := &service{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger.With().Str("component", "auth_service").Logger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// bcrypt only hashes the first 72 bytes.
	if n := len(input.Password); n < validation.MinPasswordLength || n > validation.MaxPasswordLength {
		return nil, apperrors.Validation(fmt.Sprintf("password must be between %d and %d characters long",
			validation.MinPasswordLength, validation.MaxPasswordLength))
	}

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		s.logger.Error().Err(err).Msg("failed to look up email")
		return nil, apperrors.Internal("Failed to register user", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), PasswordCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to register user", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        input.Phone,
		KYCStatus:    models.KYCPending,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailTaken
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, apperrors.Internal("Failed to register user", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return s.issue(user)
}

func (s *service) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.Debug().Msg("login failed: unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("failed to look up user")
		return nil, apperrors.Internal("Failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug().Str("user_id", user.ID.String()).Msg("login failed: incorrect password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	claims, err := s.parseToken(refreshToken, models.TokenUseRefresh)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.Wrap(err)
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken.Wrap(err)
		}
		return nil, apperrors.Internal("Failed to refresh token", err)
	}

	return s.issue(user)
}

func (s *service) ParseAccessToken(token string) (*models.UserClaims, error) {
	claims, err := s.parseToken(token, models.TokenUseAccess)
	if err != nil {
		return nil, apperrors.ErrInvalidToken.Wrap(err)
	}
	return claims, nil
}

func (s *service) issue(user *models.User) (*models.AuthResult, error) {
	accessToken, refreshToken, err := s.generateTokens(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("error generating tokens")
		return nil, apperrors.Internal("Failed to issue tokens", err)
	}
	return &models.AuthResult{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}
