// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tuition/config"
	"tuition/internal/domain/service"
	"tuition/internal/errors"
)

const (
	tokenTypeAccess = "access"
	tokenIssuer     = "tuition"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		accessTTL:    ttl,
	}, nil
}

// GenerateAccessToken creates a signed access token carrying the user's roles.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses the token, checks its signature and expiry, and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid || claims.Type != tokenTypeAccess {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
