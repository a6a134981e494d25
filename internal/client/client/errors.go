package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrBadResponse = errors.New("malformed server response")
)

// APIError is a business error reported by the server through a
// non-success envelope. Message is meant to be shown to the user as-is.
type APIError struct {
	Status     string
	Message    string
	HTTPStatus int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %q (http %d)", e.Status, e.HTTPStatus)
	}
	return fmt.Sprintf("api status %q (http %d): %s", e.Status, e.HTTPStatus, e.Message)
}
