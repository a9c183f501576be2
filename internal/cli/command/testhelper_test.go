package command

import (
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/solgate/solgate-go/internal/cli/connection"
)

// mockServer creates a test HTTP server with custom handlers.
type mockServer struct {
	*httptest.Server
	handlers map[string]http.HandlerFunc
}

// newMockServer creates a new mock server.
func newMockServer() *mockServer {
	m := &mockServer{
		handlers: make(map[string]http.HandlerFunc),
	}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Find handler by path prefix match
		for pattern, handler := range m.handlers {
			if strings.HasPrefix(r.URL.Path, pattern) {
				handler(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	return m
}

// handle registers a handler for a path pattern.
func (m *mockServer) handle(pattern string, handler http.HandlerFunc) {
	m.handlers[pattern] = handler
}

// successResponse writes a success envelope.
func successResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// failureResponse writes a failure envelope with an error code header.
func failureResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// sampleInstruction returns an instruction payload in wire form.
func sampleInstruction() map[string]any {
	return map[string]any{
		"program_id": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		"accounts": []map[string]any{
			{"pubkey": "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T", "is_signer": false, "is_writable": true},
			{"pubkey": "SysvarRent111111111111111111111111111111111", "is_signer": false, "is_writable": false},
		},
		"instruction_data": "AAk=",
	}
}

// runCommand runs the app against the mock server and returns the error.
func runCommand(server *mockServer, args ...string) error {
	app := App()

	fullArgs := []string{"solgate-cli", "--server", server.URL, "--output", "json"}
	fullArgs = append(fullArgs, args...)

	return app.Run(fullArgs)
}

// newContext builds a cli.Context with global flags pointing at the
// mock server, for testing helpers that take a context directly.
func newContext(server *mockServer) *cli.Context {
	app := &cli.App{
		Name:  "test",
		Flags: globalFlags(),
		Metadata: map[string]any{
			"connMgr": connection.NewManager(),
		},
	}

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		f.Apply(set)
	}
	set.Parse([]string{"--server", server.URL})

	return cli.NewContext(app, set, nil)
}
