// Package garth is a client library for the Garmin Connect API. It
// authenticates from a serialized session token and exposes typed loaders
// for wellness data plus a generic passthrough for arbitrary Connect API
// paths.
package garth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/matin/garth-mcp-server/internal/auth"
	"github.com/matin/garth-mcp-server/internal/transport"
	internalTypes "github.com/matin/garth-mcp-server/internal/types"
	"golang.org/x/time/rate"
)

const (
	// DefaultDomain is the default Garmin domain
	DefaultDomain = internalTypes.DefaultDomain

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout
)

// Client is the main Garmin Connect API client
type Client struct {
	// Service interfaces
	Users     UserService
	Steps     StepsService
	Stress    StressService
	Sleep     SleepService
	HRV       HRVService
	Intensity IntensityService
	Hydration HydrationService

	// Internal fields
	domain    string
	transport Transport
	options   *ClientOptions
	session   *Session

	usernameMu sync.Mutex
	username   string
}

// ClientOptions configures the client
type ClientOptions struct {
	// Domain is the Garmin domain suffix, garmin.com by default. Accounts
	// in China use garmin.cn.
	Domain string

	// BaseURL overrides the Connect API base URL (used in tests)
	BaseURL string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Token is a serialized session token, as held in GARTH_TOKEN
	Token string

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting. When nil a default limiter of 100
	// requests per minute is installed.
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication with the Connect API
type Transport interface {
	Get(ctx context.Context, path string, result interface{}) error
	SetSession(session *internalTypes.Session)
}

// Session is the decoded state of a session token
type Session struct {
	AccessToken           string    `json:"accessToken"`
	TokenType             string    `json:"tokenType"`
	Scope                 string    `json:"scope"`
	ExpiresAt             time.Time `json:"expiresAt"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt,omitempty"`
	Domain                string    `json:"domain,omitempty"`
}

// NewClient creates a new Garmin Connect client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Decode the token up front so its embedded domain can steer the
	// transport when no explicit domain was given.
	var session *internalTypes.Session
	if opts.Token != "" {
		var err error
		session, err = auth.DecodeToken(opts.Token)
		if err != nil {
			return nil, err
		}
	}

	domain := opts.Domain
	if domain == "" && session != nil && session.OAuth1.Domain != "" {
		domain = session.OAuth1.Domain
	}
	if domain == "" {
		domain = DefaultDomain
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	if opts.RateLimiter == nil {
		opts.RateLimiter = rate.NewLimiter(rate.Every(time.Minute/100), 10)
	}

	trans := transport.NewRESTTransport(&transport.Options{
		Domain:      domain,
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	c := &Client{
		domain:    domain,
		transport: trans,
		options:   opts,
	}

	if session != nil {
		c.setSession(session)
	}

	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client from a serialized session token
func NewClientWithToken(token string) (*Client, error) {
	return NewClient(&ClientOptions{
		Token: token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Users = &userService{client: c}
	c.Steps = &stepsService{client: c}
	c.Stress = &stressService{client: c}
	c.Sleep = &sleepService{client: c}
	c.HRV = &hrvService{client: c}
	c.Intensity = &intensityService{client: c}
	c.Hydration = &hydrationService{client: c}
}

// LoadToken decodes a serialized session token and installs it on the
// client, replacing any previous session.
func (c *Client) LoadToken(token string) error {
	session, err := auth.DecodeToken(token)
	if err != nil {
		return err
	}
	c.setSession(session)
	return nil
}

// setSession installs a decoded session on the client and transport
func (c *Client) setSession(session *internalTypes.Session) {
	c.session = &Session{
		AccessToken: session.OAuth2.AccessToken,
		TokenType:   session.OAuth2.TokenType,
		Scope:       session.OAuth2.Scope,
		Domain:      session.OAuth1.Domain,
	}
	if session.OAuth2.ExpiresAt > 0 {
		c.session.ExpiresAt = time.Unix(session.OAuth2.ExpiresAt, 0)
	}
	if session.OAuth2.RefreshTokenExpiresAt > 0 {
		c.session.RefreshTokenExpiresAt = time.Unix(session.OAuth2.RefreshTokenExpiresAt, 0)
	}
	c.transport.SetSession(session)
}

// GetSession returns the current session
func (c *Client) GetSession() *Session {
	return c.session
}

// Domain returns the Garmin domain the client talks to
func (c *Client) Domain() string {
	return c.domain
}

// ConnectAPI fetches JSON from an arbitrary Connect API path and decodes it
// into result. The path may carry a query string. Rate limiting, hooks, and
// Sentry capture apply the same as for the typed loaders.
func (c *Client) ConnectAPI(ctx context.Context, path string, result interface{}) error {
	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			c.captureError(ctx, err, path, 0)
			return err
		}
	}

	start := time.Now()
	err := c.transport.Get(ctx, path, result)
	duration := time.Since(start)

	if err != nil {
		c.captureError(ctx, err, path, duration)
	}

	return err
}

// captureError reports an API failure to Sentry with request context
func (c *Client) captureError(ctx context.Context, err error, path string, duration time.Duration) {
	capture := func(scope *sentry.Scope, hub interface{ CaptureException(error) *sentry.EventID }) {
		scope.SetTag("connectapi.path", path)
		scope.SetContext("connectapi", map[string]interface{}{
			"path":     path,
			"duration": duration.String(),
			"domain":   c.domain,
		})
		hub.CaptureException(err)
	}

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			capture(scope, hub)
		})
	} else {
		sentry.WithScope(func(scope *sentry.Scope) {
			capture(scope, sentry.CurrentHub())
		})
	}
}

// Username returns the account's userName, fetching the profile on first
// use. The detailed sleep endpoint embeds it in its path.
func (c *Client) Username(ctx context.Context) (string, error) {
	c.usernameMu.Lock()
	defer c.usernameMu.Unlock()

	if c.username != "" {
		return c.username, nil
	}

	profile, err := c.Users.Profile(ctx)
	if err != nil {
		return "", err
	}

	c.username = profile.UserName
	return c.username, nil
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
