package main

import (
	"testing"

	"github.com/matin/garth-mcp-server/pkg/garth"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestServerInitialization verifies that every tool registers without
// panicking. This catches jsonschema tag errors in the input and output
// structs, which only surface at registration time.
func TestServerInitialization(t *testing.T) {
	impl := &mcp.Implementation{
		Name:    "garth",
		Version: "test",
	}

	server := mcp.NewServer(impl, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Server initialization panicked: %v", r)
		}
	}()

	registerTools(server, newGarthTools(&garth.ClientOptions{}))
}
