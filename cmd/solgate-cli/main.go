// Package main provides the entry point for solgate-cli.
//
// solgate-cli is the command-line tool for SolGate, supporting both
// single-command mode and interactive REPL mode.
package main

import (
	"fmt"
	"os"

	"github.com/solgate/solgate-go/internal/cli/command"
	"github.com/solgate/solgate-go/internal/cli/repl"
)

func main() {
	app := command.App()

	// No arguments starts interactive mode.
	if len(os.Args) == 1 {
		r := repl.New(app.Run)
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
