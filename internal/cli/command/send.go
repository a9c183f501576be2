// Package command provides CLI command definitions for solgate-cli.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/solgate/solgate-go/internal/cli/connection"
)

// SendCommand returns the send subcommand group.
func SendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "Build unsigned transfer instructions",
		Subcommands: []*cli.Command{
			{
				Name:  "sol",
				Usage: "Build a SOL transfer instruction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Aliases:  []string{"f"},
						Usage:    "Sender public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Aliases:  []string{"t"},
						Usage:    "Recipient public key",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "lamports",
						Aliases:  []string{"l"},
						Usage:    "Amount in lamports",
						Required: true,
					},
				},
				Action: sendSOL,
			},
			{
				Name:  "token",
				Usage: "Build an SPL token transfer instruction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "destination",
						Aliases:  []string{"D"},
						Usage:    "Destination token account public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mint",
						Aliases:  []string{"m"},
						Usage:    "Mint account public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "owner",
						Aliases:  []string{"O"},
						Usage:    "Owner public key of the source account",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "amount",
						Aliases:  []string{"n"},
						Usage:    "Amount in base units",
						Required: true,
					},
				},
				Action: sendToken,
			},
		},
	}
}

func sendSOL(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]any{
		"from":     c.String("from"),
		"to":       c.String("to"),
		"lamports": c.Int64("lamports"),
	}

	resp, err := client.Post(ctx, "/send/sol", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result instructionResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return outputInstruction(ParseGlobalFlags(c), &result)
}

func sendToken(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]any{
		"destination": c.String("destination"),
		"mint":        c.String("mint"),
		"owner":       c.String("owner"),
		"amount":      c.Int64("amount"),
	}

	resp, err := client.Post(ctx, "/send/token", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result instructionResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return outputInstruction(ParseGlobalFlags(c), &result)
}
