package domain

import "errors"

// Sentinel errors returned by services. The strings are part of the API
// contract and are surfaced verbatim in error responses.
var (
	ErrEmailTaken          = errors.New("Email already registered")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrInvalidRefreshToken = errors.New("Invalid refresh token")
	ErrInvalidUpdate       = errors.New("Invalid updates")
	ErrUserNotFound        = errors.New("User not found")
	ErrWatchNotFound       = errors.New("Watch not found")
)
