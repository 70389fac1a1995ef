package ipam

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrPrefixExhausted is returned by AllocateNext when the prefix has no
// free addresses left. It is recoverable: capacity may be released later.
var ErrPrefixExhausted = errors.New("prefix exhausted")

// APIError is a structured error from the backend API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the error indicates a missing backend record.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

// IsAuth reports whether the error indicates failed authentication.
func IsAuth(err error) bool {
	return isStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}

// IsValidation reports whether the error indicates a request the backend
// rejected as malformed. The underlying cause may still be transient, e.g.
// a referenced slug that has not been created on the backend yet.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
		apiErr.StatusCode != http.StatusNotFound &&
		apiErr.StatusCode != http.StatusUnauthorized &&
		apiErr.StatusCode != http.StatusForbidden
}

// IsExhausted reports whether the error indicates an exhausted prefix.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrPrefixExhausted)
}

// IsTransient reports whether the error is worth a plain retry: server-side
// failures, timeouts, and network errors.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// Context deadline on the per-call timeout counts as transient too.
	return errors.Is(err, context.DeadlineExceeded)
}

func isStatus(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.StatusCode == code {
			return true
		}
	}
	return false
}
