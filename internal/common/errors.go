package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound also covers rows that exist but
	// are hidden from the viewer; callers must not tell the two apart.
	ErrorNotFound = errors.New("not found")

	// Request validation.
	ErrInvalidPagination = errors.New("invalid pagination")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// A valid token whose subject has no profile.
	ErrProfileMissing = errors.New("profile not found for user")
)
