package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token uses. Refresh tokens are rejected by the authenticate gate.
const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	TokenUse string    `json:"token_use"`
}

// AuthResult is returned by register, login and refresh.
type AuthResult struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
