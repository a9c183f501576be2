// Package domain defines the core domain models for SolGate.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Keypair: a freshly generated ed25519 keypair
//   - Instruction / AccountMeta: an unsigned, unsubmitted instruction
//   - Signature / Verification: message signing outcomes
//   - Errors: domain-specific error definitions
//
// Nothing in this package has identity or lifecycle: every value lives
// for exactly one request/response exchange.
package domain
