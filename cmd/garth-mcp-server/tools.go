package main

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// tokenEnvVar holds the serialized Garmin session token.
	tokenEnvVar = "GARTH_TOKEN"

	// missingTokenMessage is returned as plain tool output (not an error)
	// when no token is configured, so the agent can relay it verbatim.
	missingTokenMessage = "You must set the GARTH_TOKEN environment variable to use this tool"
)

// garthTools holds the Garmin client and implements all tool handlers. The
// token is re-read from the environment on every call; the client is reused
// while it is unchanged.
type garthTools struct {
	baseOpts *garth.ClientOptions

	mu     sync.Mutex
	client *garth.Client
	token  string
}

func newGarthTools(baseOpts *garth.ClientOptions) *garthTools {
	if baseOpts == nil {
		baseOpts = &garth.ClientOptions{}
	}
	return &garthTools{baseOpts: baseOpts}
}

// session returns an authenticated client, or errMissingToken when no
// GARTH_TOKEN is set.
func (t *garthTools) session() (*garth.Client, error) {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		return nil, errMissingToken
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client != nil && t.token == token {
		return t.client, nil
	}

	opts := *t.baseOpts
	opts.Token = token

	client, err := garth.NewClient(&opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load GARTH_TOKEN: %w", err)
	}

	t.client = client
	t.token = token
	return client, nil
}

var errMissingToken = fmt.Errorf("%s", missingTokenMessage)

// missingTokenResult wraps the missing-token message as successful text
// content so the agent relays it instead of surfacing a tool error.
func missingTokenResult() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: missingTokenMessage},
		},
	}
}

// parseEndDate parses an optional YYYY-MM-DD end date; empty means today.
func parseEndDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end_date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// parseDate parses a required YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// round2 rounds to two decimal places, as the unit conversions expose.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
