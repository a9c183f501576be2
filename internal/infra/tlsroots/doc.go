// Package tlsroots provides TLS certificate pool management for SolGate.
//
// This package handles TLS certificate loading:
//
//   - roots.go: System certificates + custom CA loading
//
// Features:
//
//   - System certificate pool integration
//   - Custom CA certificate support
//   - Client and mutual TLS config construction
package tlsroots
