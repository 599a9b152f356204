package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying the bearer
// tokens returned by login.
type JWTService interface {
	// GenerateToken creates a signed token embedding the user's identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID string, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed token).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of a token.
type Claims struct {
	// UserID is the hex identifier of the user the token was issued for.
	UserID string `json:"uid,omitempty"`

	// Email is the user's login email at issue time.
	Email string `json:"email,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
