package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable indicates the marketplace API could not be reached at all
var ErrUnavailable = errors.New("marketplace api unavailable")

// Error is a failure reported by the marketplace API
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace api: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("marketplace api: HTTP %d", e.StatusCode)
}

// IsNotFound reports whether err is an API 404
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API 401
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
