package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealworks/savor-api/internal/config"
)

const testSecret = "this-is-a-test-secret-at-least-32-chars"

func newTestService(t *testing.T, lifetimeMinutes int) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: lifetimeMinutes,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 720,
	})
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 720)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "64f1b2c3d4e5f60718293a4b", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")), "JWT must have three segments")

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(720*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestJWTValidateErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("expired token", func(t *testing.T) {
		svc := newTestService(t, 720)

		issued := time.Now().Add(-24 * time.Hour)
		svc.timeFunc = func() time.Time { return issued }
		token, err := svc.GenerateToken(ctx, "user-1", "a@b.com")
		require.NoError(t, err)

		svc.timeFunc = time.Now
		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("just-expired token within clock skew still passes", func(t *testing.T) {
		svc := newTestService(t, 1)

		issued := time.Now().Add(-90 * time.Second)
		svc.timeFunc = func() time.Time { return issued }
		token, err := svc.GenerateToken(ctx, "user-1", "a@b.com")
		require.NoError(t, err)

		svc.timeFunc = time.Now
		_, err = svc.ValidateToken(ctx, token)
		assert.NoError(t, err, "expiry inside the 2 minute skew window is tolerated")
	})

	t.Run("wrong signing key", func(t *testing.T) {
		svc := newTestService(t, 720)
		other := newTestService(t, 720)
		other.signingKey = []byte("a-completely-different-32-char-key!!")

		token, err := svc.GenerateToken(ctx, "user-1", "a@b.com")
		require.NoError(t, err)

		_, err = other.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newTestService(t, 720)

		_, err := svc.ValidateToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered payload", func(t *testing.T) {
		svc := newTestService(t, 720)

		token, err := svc.GenerateToken(ctx, "user-1", "a@b.com")
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		parts[1] = "eyJ1aWQiOiJzb21lYm9keS1lbHNlIn0"
		_, err = svc.ValidateToken(ctx, strings.Join(parts, "."))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestBcryptHashAndVerify(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hashed, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)
	assert.True(t, strings.HasPrefix(hashed, "$2a$12$"), "cost factor 12 is part of the contract")

	assert.NoError(t, verifier.Compare(hashed, "s3cret-password"))
	assert.Error(t, verifier.Compare(hashed, "wrong-password"))
}
