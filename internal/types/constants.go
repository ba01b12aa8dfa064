package types

import (
	"errors"
	"time"
)

const (
	// DefaultDomain is the default Garmin domain. Users in China override
	// this with "garmin.cn".
	DefaultDomain = "garmin.com"

	// ConnectAPISubdomain is the host prefix for the Connect API.
	ConnectAPISubdomain = "connectapi"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// UserAgent is the user agent string the Connect API expects from
	// mobile clients.
	UserAgent = "GCM-iOS-5.7.2.1"
)

// Common errors
var (
	// ErrNotAuthenticated is returned when authentication is required
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired is returned when the OAuth2 token has expired
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden is returned when the account is not allowed to access
	// a resource (some Garmin endpoints 403 for certain accounts)
	ErrForbidden = errors.New("access forbidden")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")

	// ErrInvalidToken is returned when GARTH_TOKEN cannot be decoded
	ErrInvalidToken = errors.New("invalid session token")
)
