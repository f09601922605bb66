package chatapp_errors

import "errors"

// Common errors
var (
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenExpired is kept separate from ErrUnauthorized because an
	// expired token maps to a different response body than any other
	// verification failure.
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrRateLimited  = errors.New("rate limited")
)
