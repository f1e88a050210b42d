package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/JwadKadry/stake-invest/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is set on and required of every token.
const Issuer = "stake-invest"

var errWrongTokenUse = errors.New("token used for the wrong purpose")

// generateTokens signs an access token and a refresh token for user.
func (s *service) generateTokens(user *models.User) (accessToken string, refreshToken string, err error) {
	now := s.now()

	accessToken, err = s.sign(user, models.TokenUseAccess, now, s.cfg.AccessTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err = s.sign(user, models.TokenUseRefresh, now, s.cfg.RefreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *service) sign(user *models.User, use string, now time.Time, ttl time.Duration) (string, error) {
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   user.ID.String(),
		},
		UserID:   user.ID,
		Email:    user.Email,
		TokenUse: use,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// parseToken validates signature, issuer and expiry, then checks the token use.
func (s *service) parseToken(tokenStr, use string) (*models.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.TokenUse != use {
		return nil, errWrongTokenUse
	}
	return claims, nil
}
