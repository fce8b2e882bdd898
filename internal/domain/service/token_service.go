package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role names carried in token claims.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Subject string // User id, or the admin email for admin tokens.
	Roles   []string
	Type    string // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given subject.
	GenerateTokens(subject string, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
