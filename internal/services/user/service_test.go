package user

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return m.Called(ctx, id, fields).Error(0)
}

func (m *MockUserRepository) GetInvestmentSummary(ctx context.Context, userID uuid.UUID) (*models.InvestmentSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvestmentSummary), args.Error(1)
}

func sampleUser() *models.User {
	phone := "+351911111111"
	return &models.User{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     &phone,
		KYCStatus: models.KYCPending,
	}
}

func sampleSummary() *models.InvestmentSummary {
	return &models.InvestmentSummary{
		TotalInvested:           decimal.NewFromInt(3500),
		TotalReturns:            decimal.Zero,
		ActiveInvestmentsAmount: decimal.NewFromInt(1500),
		ActiveInvestments:       2,
		CompletedInvestments:    1,
	}
}

func decodePatch(t *testing.T, body string) models.ProfilePatch {
	t.Helper()
	var patch models.ProfilePatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

func TestUserService_GetProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zerolog.Nop())
	u := sampleUser()

	repo.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	repo.On("GetInvestmentSummary", mock.Anything, u.ID).Return(sampleSummary(), nil)

	profile, err := svc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "3500", profile.TotalInvested.String())
	assert.Equal(t, "1500", profile.ActiveInvestmentsAmount.String())
	assert.Equal(t, int64(2), profile.ActiveInvestments)
	assert.Equal(t, int64(1), profile.CompletedInvestments)
	assert.True(t, profile.TotalReturns.IsZero())

	data, err := json.Marshal(profile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalInvested":3500`)
	assert.NotContains(t, string(data), "password")
}

func TestUserService_GetProfileNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zerolog.Nop())
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(nil, repositories.ErrUserNotFound)

	_, err := svc.GetProfile(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "User not found", appErr.Message)
}

func TestUserService_UpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields map[string]interface{}
		wantErr    string
	}{
		{
			name:       "first name only",
			body:       `{"firstName":"  Grace "}`,
			wantFields: map[string]interface{}{"first_name": "Grace"},
		},
		{
			name:       "null phone clears it",
			body:       `{"phone":null}`,
			wantFields: map[string]interface{}{"phone": nil},
		},
		{
			name: "date of birth",
			body: `{"dateOfBirth":"1990-05-17","lastName":"Hopper"}`,
			wantFields: map[string]interface{}{
				"date_of_birth": time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
				"last_name":     "Hopper",
			},
		},
		{
			name:       "RFC3339 date of birth keeps the calendar day",
			body:       `{"dateOfBirth":"1990-05-17T00:00:00Z"}`,
			wantFields: map[string]interface{}{"date_of_birth": time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "empty first name",
			body:    `{"firstName":""}`,
			wantErr: "firstName cannot be empty",
		},
		{
			name:    "null last name",
			body:    `{"lastName":null}`,
			wantErr: "lastName cannot be empty",
		},
		{
			name:    "bad date",
			body:    `{"dateOfBirth":"17/05/1990"}`,
			wantErr: "dateOfBirth must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := NewService(repo, zerolog.Nop())
			u := sampleUser()

			if tt.wantErr == "" {
				repo.On("UpdateFields", mock.Anything, u.ID, tt.wantFields).Return(nil)
				repo.On("GetByID", mock.Anything, u.ID).Return(u, nil)
				repo.On("GetInvestmentSummary", mock.Anything, u.ID).Return(sampleSummary(), nil)
			}

			profile, err := svc.UpdateProfile(context.Background(), u.ID, decodePatch(t, tt.body))
			if tt.wantErr != "" {
				require.Error(t, err)
				appErr, ok := apperrors.As(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.KindValidation, appErr.Kind)
				assert.Equal(t, tt.wantErr, appErr.Message)
				repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, u.ID, profile.ID)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfileEmptyPatch(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, zerolog.Nop())
	u := sampleUser()

	repo.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	repo.On("GetInvestmentSummary", mock.Anything, u.ID).Return(sampleSummary(), nil)

	profile, err := svc.UpdateProfile(context.Background(), u.ID, decodePatch(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, u.Email, profile.Email)
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
