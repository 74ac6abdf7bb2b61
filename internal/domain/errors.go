package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork         = errors.New("network error")
	ErrAuth            = errors.New("invalid or missing token")
	ErrInvalidResponse = errors.New("invalid response")
	ErrEmptyList       = errors.New("empty company list")
	ErrNothingListed   = errors.New("nothing listed")
)

// HTTPError is a non-200 upstream status other than the auth statuses.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string { return fmt.Sprintf("unexpected status %d", e.StatusCode) }
