package auth

import (
	"context"

	"github.com/JwadKadry/stake-invest/internal/models"
)

type Service interface {
	Register(ctx context.Context, input models.RegisterInput) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
	// ParseAccessToken validates an access token and returns its claims.
	ParseAccessToken(token string) (*models.UserClaims, error)
}
