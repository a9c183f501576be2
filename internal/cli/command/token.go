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

// instructionResult is the wire form of a built instruction.
type instructionResult struct {
	ProgramID string `json:"program_id"`
	Accounts  []struct {
		Pubkey     string `json:"pubkey"`
		IsSigner   bool   `json:"is_signer"`
		IsWritable bool   `json:"is_writable"`
	} `json:"accounts"`
	InstructionData string `json:"instruction_data"`
}

// TokenCommand returns the token subcommand group.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Build SPL token instructions",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Build an initialize-mint instruction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mint-authority",
						Aliases:  []string{"a"},
						Usage:    "Mint authority public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mint",
						Aliases:  []string{"m"},
						Usage:    "Mint account public key",
						Required: true,
					},
					&cli.Int64Flag{
						Name:    "decimals",
						Aliases: []string{"d"},
						Value:   9,
						Usage:   "Number of decimal places (0-18)",
					},
				},
				Action: tokenCreate,
			},
			{
				Name:  "mint",
				Usage: "Build a mint-to instruction",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "mint",
						Aliases:  []string{"m"},
						Usage:    "Mint account public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "destination",
						Aliases:  []string{"D"},
						Usage:    "Destination token account public key",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "authority",
						Aliases:  []string{"a"},
						Usage:    "Mint authority public key",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "amount",
						Aliases:  []string{"n"},
						Usage:    "Amount in base units",
						Required: true,
					},
				},
				Action: tokenMint,
			},
		},
	}
}

func tokenCreate(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]any{
		"mintAuthority": c.String("mint-authority"),
		"mint":          c.String("mint"),
		"decimals":      c.Int64("decimals"),
	}

	resp, err := client.Post(ctx, "/token/create", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result instructionResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return outputInstruction(ParseGlobalFlags(c), &result)
}

func tokenMint(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]any{
		"mint":        c.String("mint"),
		"destination": c.String("destination"),
		"authority":   c.String("authority"),
		"amount":      c.Int64("amount"),
	}

	resp, err := client.Post(ctx, "/token/mint", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result instructionResult
	if err := connection.ParseResponse(resp, &result); err != nil {
		return err
	}

	return outputInstruction(ParseGlobalFlags(c), &result)
}

// outputInstruction renders a built instruction in the selected format.
func outputInstruction(flags *GlobalFlags, result *instructionResult) error {
	switch output.Format(flags.Output) {
	case output.FormatJSON, output.FormatYAML:
		formatter := output.NewFormatter(output.Format(flags.Output), flags.Wide)
		return formatter.Format(os.Stdout, result)
	default:
		fmt.Printf("Program: %s\n\n", result.ProgramID)

		table := &output.Table{
			Headers: []string{"#", "ACCOUNT", "SIGNER", "WRITABLE"},
		}
		for i, acct := range result.Accounts {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%d", i),
				acct.Pubkey,
				boolMark(acct.IsSigner),
				boolMark(acct.IsWritable),
			})
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}

		fmt.Printf("\nInstruction data (base64): %s\n", result.InstructionData)
		return nil
	}
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
