// Package user serves the authenticated user's own profile.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"
	"github.com/JwadKadry/stake-invest/internal/validation"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"
	"github.com/rs/zerolog"
)

// DateLayout is the accepted calendar date format for dateOfBirth.
const DateLayout = "2006-01-02"

type service struct {
	repo   repositories.UserRepository
	logger zerolog.Logger
}

func NewService(repo repositories.UserRepository, logger zerolog.Logger) Service {
	if repo == nil {
		panic("user repository is required")
	}

	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to load user")
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	summary, err := s.repo.GetInvestmentSummary(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to summarize investments")
		return nil, apperrors.Internal("Failed to load profile", err)
	}

	return &models.UserProfile{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Phone:             user.Phone,
		DateOfBirth:       user.DateOfBirth,
		KYCStatus:         user.KYCStatus,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
		InvestmentSummary: *summary,
	}, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (*models.UserProfile, error) {
	fields, err := patchFields(patch)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update profile")
			return nil, apperrors.Internal("Failed to update profile", err)
		}
		s.logger.Info().Str("user_id", userID.String()).Int("fields", len(fields)).Msg("profile updated")
	}

	return s.GetProfile(ctx, userID)
}

// patchFields maps the present fields of patch to column updates. A nil
// value clears the column.
func patchFields(patch models.ProfilePatch) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	for _, f := range []struct {
		field  string
		column string
		value  nullable.Nullable[string]
	}{
		{"firstName", "first_name", patch.FirstName},
		{"lastName", "last_name", patch.LastName},
	} {
		if !f.value.IsSpecified() {
			continue
		}
		value, err := f.value.Get()
		trimmed := strings.TrimSpace(value)
		if err != nil || trimmed == "" {
			return nil, apperrors.Validation(f.field + " cannot be empty")
		}
		fields[f.column] = trimmed
	}

	if patch.Phone.IsSpecified() {
		var phone string
		if !patch.Phone.IsNull() {
			phone = strings.TrimSpace(patch.Phone.MustGet())
		}
		switch {
		case phone == "":
			fields["phone"] = nil
		case len(phone) > validation.MaxPhoneLength:
			return nil, apperrors.Validation(fmt.Sprintf("phone must not be more than %d characters long", validation.MaxPhoneLength))
		default:
			fields["phone"] = phone
		}
	}

	if patch.DateOfBirth.IsSpecified() {
		if patch.DateOfBirth.IsNull() {
			fields["date_of_birth"] = nil
		} else {
			dob, err := parseDate(patch.DateOfBirth.MustGet())
			if err != nil {
				return nil, apperrors.Validation("dateOfBirth must be a date in YYYY-MM-DD format").Wrap(err)
			}
			fields["date_of_birth"] = dob
		}
	}

	return fields, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
