package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so the two cases are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrTokenNotYetValid is returned when a token's not-before claim is
	// in the future.
	ErrTokenNotYetValid = errors.New("token not yet valid")

	// ErrHashingFailed is returned when password hashing fails.
	ErrHashingFailed = errors.New("password hashing failed")
)
