package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authorization token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authorization token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authorization token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authorization token is missing")

	// ErrInvalidCredentials indicates the email/password pair did not match a
	// user. The same error covers both an unknown email and a wrong password
	// so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
