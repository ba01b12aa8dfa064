package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/matin/garth-mcp-server/internal/auth"
	internalTypes "github.com/matin/garth-mcp-server/internal/types"
	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// newTestSession connects an MCP client to the server over in-memory
// transports, so calls exercise the full protocol path including output
// schema validation.
func newTestSession(t *testing.T, opts *garth.ClientOptions) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{Name: "garth", Version: "test"}, nil)
	registerTools(server, newGarthTools(opts))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	if _, err := server.Connect(context.Background(), serverTransport, nil); err != nil {
		t.Fatalf("failed to connect server: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "garth-test-client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func testSessionToken(t *testing.T) string {
	t.Helper()
	token, err := auth.EncodeToken(&internalTypes.Session{
		OAuth1: internalTypes.OAuth1Token{
			OAuthToken:       "oauth-token",
			OAuthTokenSecret: "oauth-secret",
		},
		OAuth2: internalTypes.OAuth2Token{
			TokenType:   "Bearer",
			AccessToken: "access-token",
			ExpiresAt:   time.Now().Add(time.Hour).Unix(),
		},
	})
	if err != nil {
		t.Fatalf("failed to encode token: %v", err)
	}
	return token
}

func TestParseEndDate(t *testing.T) {
	end, err := parseEndDate("")
	if err != nil {
		t.Fatalf("empty end date should be accepted: %v", err)
	}
	if !end.IsZero() {
		t.Errorf("empty end date should parse to the zero time, got %v", end)
	}

	end, err = parseEndDate("2025-10-27")
	if err != nil {
		t.Fatalf("valid end date failed: %v", err)
	}
	want := time.Date(2025, 10, 27, 0, 0, 0, 0, time.UTC)
	if !end.Equal(want) {
		t.Errorf("got %v, want %v", end, want)
	}

	if _, err := parseEndDate("27/10/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate(""); err == nil {
		t.Error("expected error for empty required date")
	}
	if _, err := parseDate("2025-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
	day, err := parseDate("2025-02-28")
	if err != nil {
		t.Fatalf("valid date failed: %v", err)
	}
	if day.Format("2006-01-02") != "2025-02-28" {
		t.Errorf("date round-trip mismatch: %v", day)
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.005:   1.0, // float64 representation of 1.005 is just below it
		1.015:   1.01,
		123.456: 123.46,
		1000:    1000,
		0:       0,
	}
	for in, want := range cases {
		if got := round2(in); got != want {
			t.Errorf("round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSessionMissingToken(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	tools := newGarthTools(&garth.ClientOptions{})
	if _, err := tools.session(); err != errMissingToken {
		t.Fatalf("expected errMissingToken, got %v", err)
	}
}

func TestMissingTokenResult(t *testing.T) {
	result := missingTokenResult()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	if text.Text != missingTokenMessage {
		t.Errorf("unexpected message: %q", text.Text)
	}
}

func TestToolsWithoutTokenReturnGuidance(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	tools := newGarthTools(&garth.ClientOptions{})
	result, _, err := tools.DailySteps(context.Background(), nil, DailyRangeInput{})
	if err != nil {
		t.Fatalf("missing token must not be a tool error: %v", err)
	}
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected guidance content when token is missing")
	}
}

func TestMissingTokenOverSession(t *testing.T) {
	t.Setenv(tokenEnvVar, "")

	session := newTestSession(t, &garth.ClientOptions{})

	// A mix of list, object, and flat output shapes; all must survive
	// output schema validation and deliver the guidance text.
	cases := []struct {
		tool string
		args map[string]any
	}{
		{"daily_steps", map[string]any{}},
		{"user_profile", map[string]any{}},
		{"nightly_sleep", map[string]any{}},
		{"get_activity_weather", map[string]any{"activity_id": 42}},
		{"get_respiration_data", map[string]any{"date": "2025-10-27"}},
		{"monthly_activity_summary", map[string]any{"year": 2025, "month": 10}},
		{"snapshot", map[string]any{"from_date": "2025-10-01", "to_date": "2025-10-07"}},
	}

	for _, tc := range cases {
		t.Run(tc.tool, func(t *testing.T) {
			res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      tc.tool,
				Arguments: tc.args,
			})
			if err != nil {
				t.Fatalf("call failed at the protocol level: %v", err)
			}
			if res.IsError {
				t.Fatalf("expected a successful result, got IsError with %v", res.Content)
			}
			if len(res.Content) == 0 {
				t.Fatal("expected guidance content")
			}
			text, ok := res.Content[0].(*mcp.TextContent)
			if !ok {
				t.Fatalf("expected text content, got %T", res.Content[0])
			}
			if text.Text != missingTokenMessage {
				t.Errorf("unexpected message: %q", text.Text)
			}
		})
	}
}

func TestNoDataDayOverSession(t *testing.T) {
	// Days without data come back as a literal null body with status 200.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null"))
	}))
	defer backend.Close()

	t.Setenv(tokenEnvVar, testSessionToken(t))

	session := newTestSession(t, &garth.ClientOptions{BaseURL: backend.URL})

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_activity_weather",
		Arguments: map[string]any{"activity_id": 42},
	})
	if err != nil {
		t.Fatalf("call failed at the protocol level: %v", err)
	}
	if res.IsError {
		t.Fatalf("expected a successful result, got IsError with %v", res.Content)
	}

	sc, ok := res.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content = %T, want object", res.StructuredContent)
	}
	if _, ok := sc["weather"].(map[string]any); !ok {
		t.Errorf("weather = %T, want an empty object on a no-data day", sc["weather"])
	}

	res, err = session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "weekly_steps",
		Arguments: map[string]any{"weeks": 2},
	})
	if err != nil {
		t.Fatalf("call failed at the protocol level: %v", err)
	}
	if res.IsError {
		t.Fatalf("expected a successful result, got IsError with %v", res.Content)
	}
	sc, ok = res.StructuredContent.(map[string]any)
	if !ok {
		t.Fatalf("structured content = %T, want object", res.StructuredContent)
	}
	if _, ok := sc["weeks"].([]any); !ok {
		t.Errorf("weeks = %T, want an empty list on a no-data range", sc["weeks"])
	}
}

func TestUserProfileTool(t *testing.T) {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		t.Skip("GARTH_TOKEN not set")
	}

	tools := newGarthTools(&garth.ClientOptions{})

	_, output, err := tools.UserProfile(context.Background(), nil, UserProfileInput{})
	if err != nil {
		t.Fatalf("UserProfile failed: %v", err)
	}
	if output.DisplayName == "" {
		t.Error("expected a display name")
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	t.Logf("Profile:\n%s", string(jsonData))
}

func TestDailyStepsTool(t *testing.T) {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		t.Skip("GARTH_TOKEN not set")
	}

	tools := newGarthTools(&garth.ClientOptions{})

	_, output, err := tools.DailySteps(context.Background(), nil, DailyRangeInput{Days: 7})
	if err != nil {
		t.Fatalf("DailySteps failed: %v", err)
	}
	if output.Count == 0 {
		t.Error("expected at least one day of steps")
	}
	t.Logf("DailySteps returned %d days", output.Count)
}

func TestGetActivitiesTool(t *testing.T) {
	token := os.Getenv(tokenEnvVar)
	if token == "" {
		t.Skip("GARTH_TOKEN not set")
	}

	tools := newGarthTools(&garth.ClientOptions{})

	_, output, err := tools.GetActivities(context.Background(), nil, GetActivitiesInput{Limit: 5})
	if err != nil {
		t.Fatalf("GetActivities failed: %v", err)
	}
	for _, activity := range output.Activities {
		for _, key := range activityPrivacyKeys {
			if _, present := activity[key]; present {
				t.Errorf("activity still carries stripped key %q", key)
			}
		}
	}
	t.Logf("GetActivities returned %d activities", output.Count)
}
