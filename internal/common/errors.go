// Package common defines shared constants and sentinel errors used across
// the AnimeFacts client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Form validation errors.
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Routing errors.
	ErrUnknownRoute = errors.New("unknown route")
)
