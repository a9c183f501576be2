// Package repl provides interactive mode for SolGate CLI.
//
// This package implements the Read-Eval-Print Loop for interactive use:
//
//   - repl.go: Main REPL loop and command dispatch
//   - completer.go: Tab completion for commands
//   - history.go: Command history persistence
package repl
