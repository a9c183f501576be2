// Package command provides CLI command definitions for solgate-cli.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/solgate/solgate-go/internal/cli/config"
	"github.com/solgate/solgate-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration management",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Config file path (default ~/.solgate/cli.yaml)",
			},
		},
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show CLI configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate CLI configuration",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}

	cfg, err := cliconfig.Load(path)
	if err != nil {
		return err
	}
	cfg = cliconfig.Merge(cfg)

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, cfg)
	default:
		fmt.Printf("CLI Configuration\n")
		fmt.Printf("=================\n\n")
		fmt.Printf("Config file: %s\n\n", path)
		fmt.Printf("Server:  %s\n", cfg.DefaultServer)
		fmt.Printf("Output:  %s\n", cfg.DefaultOutput)
		if len(cfg.Connections) > 0 {
			fmt.Printf("\nSaved connections:\n")
			for name, conn := range cfg.Connections {
				marker := " "
				if name == cfg.CurrentConnection {
					marker = "*"
				}
				fmt.Printf("  %s %s: %s\n", marker, name, conn.Server)
			}
		}
		return nil
	}
}

func configValidate(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		path = cliconfig.DefaultConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("No configuration file found at %s\n", path)
		fmt.Printf("Using default settings.\n")
		return nil
	}

	if _, err := cliconfig.Load(path); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Printf("✓ Configuration file is valid: %s\n", path)
	return nil
}
