// Package main provides the entry point for solgate-server.
//
// The server exposes a REST API for Solana primitives:
//
//   - Keypair generation and message signing/verification
//   - Unsigned SPL token instruction building (create, mint, transfer)
//   - Unsigned SOL and token transfer instruction building
//
// Usage:
//
//	solgate-server [flags]
//	solgate-server --config /path/to/config.yaml
//
// The server loads configuration, initializes the wallet and
// instruction services, and starts the HTTP listener.
package main
