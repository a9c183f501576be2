// Package main provides the entry point for solgate-cli.
//
// The CLI tool provides command-line access to a SolGate server for:
//
//   - Keypair generation
//   - Message signing and verification
//   - SPL token instruction building (create, mint)
//   - SOL and token transfer instruction building
//   - Health and version checks
//
// Usage:
//
//	solgate-cli [command] [flags]
//	solgate-cli keypair --output json
//	solgate-cli sign --message "hello" --secret <base58-secret>
//	solgate-cli token create --mint-authority <pubkey> --mint <pubkey> --decimals 9
//
// The CLI supports both single-command mode and interactive REPL mode.
package main
