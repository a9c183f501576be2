// Package logger provides structured logging for SolGate.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: Logger interface, handler setup and level control
//   - context.go: Context-aware logging with request IDs
//   - redact.go: Secret key material redaction
//
// Features:
//
//   - JSON and text output formats
//   - Dynamic log level adjustment
//   - Automatic masking of secret keys, by key name and by value shape
//   - Context propagation for request correlation
package logger
