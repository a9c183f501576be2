// Package httpserver provides the HTTP/HTTPS server for SolGate.
//
// This package implements the external API using stdlib net/http:
//
//   - Wallet endpoints: /keypair, /message/sign, /message/verify
//   - Instruction endpoints: /token/create, /token/mint, /send/sol, /send/token
//   - Health endpoints: /ping, /health, /ready, /metrics
//
// Features:
//
//   - TLS support
//   - Middleware chain: Recover, CORS, RequestID, BodyLimit, Audit, Metrics
//   - Graceful shutdown with configurable timeout
//   - Prometheus metrics integration
package httpserver
