package codeocean

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error reported by the Code Ocean API. It is only
// produced when a caller opts in via Response.AsError; operations themselves
// return non-2xx responses as ordinary responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("code ocean API error (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("code ocean API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the error is a not-found API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized returns true if the error is an authentication API error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden returns true if the error is an authorization API error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
