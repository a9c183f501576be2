// Package command provides CLI command definitions for SolGate.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags
//   - keypair.go: Keypair generation
//   - message.go: Message signing and verification
//   - token.go: SPL token instruction building
//   - send.go: SOL and token transfer instruction building
//   - system.go: Health, ping, and version commands
//   - config.go: CLI configuration commands
//   - connect.go: Connection management commands
//
// Commands follow a consistent pattern of parsing flags,
// calling the server API, and formatting output.
package command
