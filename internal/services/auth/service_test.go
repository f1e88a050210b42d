package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/JwadKadry/stake-invest/internal/config"
	apperrors "github.com/JwadKadry/stake-invest/internal/errors"
	"github.com/JwadKadry/stake-invest/internal/models"
	"github.com/JwadKadry/stake-invest/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
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

var testConfig = config.AuthConfig{
	JWTSecret:  "test-secret",
	AccessTTL:  time.Hour,
	RefreshTTL: 24 * time.Hour,
}

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		KYCStatus:    models.KYCPending,
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates user and issues tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo, testConfig, zerolog.Nop())

		repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ada@example.com" &&
				u.KYCStatus == models.KYCPending &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")) == nil
		})).Return(nil)

		result, err := svc.Register(context.Background(), models.RegisterInput{
			Email:     " Ada@Example.com",
			Password:  "s3cretpass",
			FirstName: "Ada",
			LastName:  "Lovelace",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.NotEmpty(t, result.RefreshToken)
		assert.NotEqual(t, result.Token, result.RefreshToken)

		claims, err := svc.ParseAccessToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, claims.UserID)
		assert.Equal(t, result.User.ID.String(), claims.Subject)
		assert.Equal(t, Issuer, claims.Issuer)
		repo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo, testConfig, zerolog.Nop())

		repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(storedUser(t, "whatever1"), nil)

		_, err := svc.Register(context.Background(), models.RegisterInput{Email: "ada@example.com", Password: "s3cretpass"})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewService(repo, testConfig, zerolog.Nop())

		repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, repositories.ErrUserNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrEmailTaken)

		_, err := svc.Register(context.Background(), models.RegisterInput{Email: "ada@example.com", Password: "s3cretpass"})
		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	user := storedUser(t, "s3cretpass")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*MockUserRepository)
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    user.Email,
			password: "s3cretpass",
			setup: func(r *MockUserRepository) {
				r.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
			},
		},
		{
			name:     "wrong password",
			email:    user.Email,
			password: "not-it",
			setup: func(r *MockUserRepository) {
				r.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
			},
			wantErr: true,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "s3cretpass",
			setup: func(r *MockUserRepository) {
				r.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repositories.ErrUserNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setup(repo)
			svc := NewService(repo, testConfig, zerolog.Nop())

			result, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
				appErr, ok := apperrors.As(err)
				require.True(t, ok)
				assert.Equal(t, "Invalid credentials", appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, testConfig, zerolog.Nop())
	user := storedUser(t, "s3cretpass")

	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	login, err := svc.Login(context.Background(), user.Email, "s3cretpass")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)

	// An access token cannot be used to refresh.
	_, err = svc.Refresh(context.Background(), login.Token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// A refresh token cannot be used as an access token.
	_, err = svc.ParseAccessToken(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_ParseAccessToken(t *testing.T) {
	user := storedUser(t, "s3cretpass")
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewService(repo, testConfig, zerolog.Nop(), WithClock(func() time.Time { return issuedAt }))
	login, err := issuer.Login(context.Background(), user.Email, "s3cretpass")
	require.NoError(t, err)

	t.Run("valid before expiry", func(t *testing.T) {
		svc := NewService(repo, testConfig, zerolog.Nop(), WithClock(func() time.Time { return issuedAt.Add(30 * time.Minute) }))
		claims, err := svc.ParseAccessToken(login.Token)
		require.NoError(t, err)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, models.TokenUseAccess, claims.TokenUse)
	})

	t.Run("expired", func(t *testing.T) {
		svc := NewService(repo, testConfig, zerolog.Nop(), WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) }))
		_, err := svc.ParseAccessToken(login.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		cfg := testConfig
		cfg.JWTSecret = "other-secret"
		svc := NewService(repo, cfg, zerolog.Nop(), WithClock(func() time.Time { return issuedAt }))
		_, err := svc.ParseAccessToken(login.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, models.UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    Issuer,
				ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
			},
			UserID:   user.ID,
			TokenUse: models.TokenUseAccess,
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		svc := NewService(repo, testConfig, zerolog.Nop(), WithClock(func() time.Time { return issuedAt }))
		_, err = svc.ParseAccessToken(signed)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_RegisterPasswordLength(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, testConfig, zerolog.Nop())

	_, err := svc.Register(context.Background(), models.RegisterInput{
		Email:    "ada@example.com",
		Password: strings.Repeat("x", 73),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
