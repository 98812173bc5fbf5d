package freshsales

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError represents a non-2xx response from the Freshsales API. It
// carries the status code and the raw body; the client performs no retry
// and no recovery, the failure surfaces to the caller untouched.
type RequestError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("freshsales: request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("freshsales: request failed with status %d: %s", e.StatusCode, e.Body)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrDomainRequired         = errors.New("domain is required")
	ErrAPIKeyRequired         = errors.New("API key is required")
	ErrPathFormat             = errors.New("path must start with '/'")
	ErrMalformedResponse      = errors.New("malformed response body")
	ErrForgetNotSupported     = errors.New("forget is not supported for this resource")
	ErrBulkDeleteNotSupported = errors.New("bulk delete is not supported for this resource")
	ErrNoMoreRecords          = errors.New("no more records")
)

// IsNotFound checks if the error is a missing-by-id response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
