// Package connection provides connection management for SolGate CLI.
//
// This package manages connections to SolGate servers:
//
//   - manager.go: Connection state and lifecycle
//   - http.go: HTTP/HTTPS client and response envelope parsing
//
// Every server response uses a uniform envelope; ParseResponse
// unwraps it and surfaces failures as errors with the server's
// error code attached.
package connection
