// Package config provides CLI configuration for SolGate.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.solgate/cli.yaml)
//   - loader.go: Configuration loading and environment merging
//
// Configuration includes:
//
//   - Default server address
//   - Output format preferences
//   - Saved connection profiles
package config
