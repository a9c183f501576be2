// Package handler provides HTTP request handlers for SolGate.
//
// This package contains handlers for all HTTP endpoints:
//
//   - keypair.go: Keypair generation
//   - message.go: Message signing and verification
//   - token.go: Mint creation and minting instructions
//   - transfer.go: SOL and SPL token transfer instructions
//   - health.go: Ping, health and readiness checks
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Wrap the outcome in the success/failure envelope
//
// Validation and SDK rejections surface as a failure envelope with a
// 4xx status; the machine-readable error code travels in the
// X-Error-Code header.
package handler
