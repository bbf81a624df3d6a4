package common

import "errors"

// Sentinel errors shared by the client and server layers. Callers match
// them with errors.Is.
var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (fail fast at the call site, never absorbed
	// into a sync status).
	ErrorMissingFieldID     = errors.New("missing field identifier")
	ErrorInvalidCategory    = errors.New("invalid field category")
	ErrorLoginAlreadyExists = errors.New("login already exists")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
