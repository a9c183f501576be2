// Package repl provides the interactive REPL mode for solgate-cli.
package repl

import "strings"

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"keypair",
			"sign",
			"verify",
			"token", "token create", "token mint",
			"send", "send sol", "send token",
			"system", "system health", "system ping", "system version",
			"config", "config show", "config validate",
			"connect", "disconnect",
			"help", "exit", "quit",
		},
	}
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
