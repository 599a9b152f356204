package mocks

import (
	"context"
	"errors"

	"github.com/mealworks/savor-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	Token  string
	Claims *auth.Claims
	Err    error
}

// Ensure MockJWTService implements auth.JWTService.
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken returns the configured token or error.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID, email string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken returns the configured claims or error.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims == nil {
		return nil, auth.ErrInvalidToken
	}
	return m.Claims, nil
}

// MockPasswordHasher implements auth.PasswordHasher for testing. It
// prefixes rather than hashes so tests can see through it.
type MockPasswordHasher struct {
	Err error
}

// Ensure MockPasswordHasher implements auth.PasswordHasher.
var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash returns a recognizable pseudo-hash.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	ShouldSucceed bool
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier.
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare succeeds or fails according to ShouldSucceed.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
