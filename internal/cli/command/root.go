// Package command provides CLI command definitions for solgate-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/solgate/solgate-go/internal/cli/connection"
	"github.com/solgate/solgate-go/internal/infra/buildinfo"
	"github.com/solgate/solgate-go/internal/infra/tlsroots"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "solgate-cli",
		Usage:   "SolGate command-line tool for Solana wallet and instruction operations",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConnectCommand(),
			DisconnectCommand(),
			KeypairCommand(),
			SignCommand(),
			VerifyCommand(),
			TokenCommand(),
			SendCommand(),
			SystemCommand(),
			ConfigCommand(),
		},
		Before: func(c *cli.Context) error {
			// Initialize connection manager
			mgr := connection.NewManager()
			c.App.Metadata["connMgr"] = mgr
			return nil
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "SolGate server address (e.g., localhost:8080)",
			EnvVars: []string{"SOLGATE_SERVER"},
			Value:   "localhost:8080",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"SOLGATE_OUTPUT"},
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "ca-cert",
			Usage:   "Path to a PEM CA certificate for HTTPS servers",
			EnvVars: []string{"SOLGATE_CA_CERT"},
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// Server connection
	Server string
	CACert string

	// Output format
	Output string // table, json, yaml
	Wide   bool

	// Other
	Verbose bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:  c.String("server"),
		CACert:  c.String("ca-cert"),
		Output:  c.String("output"),
		Wide:    c.Bool("wide"),
		Verbose: c.Bool("verbose"),
	}
}

// GetConnectionManager retrieves the connection manager from context.
func GetConnectionManager(c *cli.Context) *connection.Manager {
	if mgr, ok := c.App.Metadata["connMgr"].(*connection.Manager); ok {
		return mgr
	}
	return nil
}

// EnsureConnected returns an HTTP client for the configured server.
// When a CA certificate is given the client trusts it in addition to
// the system roots and defaults to HTTPS.
func EnsureConnected(c *cli.Context) (*connection.HTTPClient, error) {
	flags := ParseGlobalFlags(c)

	if flags.CACert != "" {
		pool, err := tlsroots.NewPool()
		if err != nil {
			return nil, fmt.Errorf("load system roots: %w", err)
		}
		if err := pool.AddCertFile(flags.CACert); err != nil {
			return nil, err
		}
		return connection.NewHTTPClientTLS(flags.Server, pool.TLSConfig()), nil
	}

	return connection.NewHTTPClient(flags.Server), nil
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
