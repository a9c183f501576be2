// Package command provides CLI command definitions for solgate-cli.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/solgate/solgate-go/internal/cli/connection"
	"github.com/solgate/solgate-go/internal/cli/output"
)

// KeypairCommand returns the keypair command.
func KeypairCommand() *cli.Command {
	return &cli.Command{
		Name:    "keypair",
		Aliases: []string{"kp"},
		Usage:   "Generate a new Solana keypair",
		Action:  keypairGenerate,
	}
}

func keypairGenerate(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.Post(ctx, "/keypair", nil)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Pubkey string `json:"pubkey"`
		Secret string `json:"secret"`
	}
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, result)
	default:
		fmt.Printf("Public key: %s\n", result.Pubkey)
		fmt.Printf("Secret key: %s\n", result.Secret)
		fmt.Printf("\nStore the secret key securely. It cannot be recovered.\n")
		return nil
	}
}
