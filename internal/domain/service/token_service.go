package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a given user.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
