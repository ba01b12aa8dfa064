package garth

import (
	"errors"

	internalTypes "github.com/matin/garth-mcp-server/internal/types"
)

// Sentinel errors. These alias the internal definitions so errors.Is works
// across the transport boundary.
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = internalTypes.ErrNotAuthenticated

	// ErrSessionExpired is returned when the OAuth2 token has expired and a
	// fresh GARTH_TOKEN must be supplied
	ErrSessionExpired = internalTypes.ErrSessionExpired

	// ErrForbidden is returned when the account may not access a resource
	ErrForbidden = internalTypes.ErrForbidden

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = internalTypes.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = internalTypes.ErrTimeout

	// ErrNotFound is returned when resource not found
	ErrNotFound = internalTypes.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = internalTypes.ErrServerError

	// ErrInvalidToken is returned when a session token cannot be decoded
	ErrInvalidToken = internalTypes.ErrInvalidToken
)

// Error represents an API error
type Error = internalTypes.Error

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrInvalidToken)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
