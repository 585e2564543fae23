package service

import (
	"time"

	"roster/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	entity.SessionClaims
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateToken signs a token for the given identity and returns it with its expiry.
	GenerateToken(claims entity.SessionClaims) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
