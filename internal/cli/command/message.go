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

// SignCommand returns the sign command.
func SignCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Sign a message with a secret key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "Message to sign",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "secret",
				Aliases:  []string{"S"},
				Usage:    "Base58-encoded secret key",
				EnvVars:  []string{"SOLGATE_SECRET"},
				Required: true,
			},
		},
		Action: messageSign,
	}
}

// VerifyCommand returns the verify command.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a message signature",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "message",
				Aliases:  []string{"m"},
				Usage:    "Message that was signed",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Base64-encoded signature",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "pubkey",
				Aliases:  []string{"p"},
				Usage:    "Base58-encoded public key",
				Required: true,
			},
		},
		Action: messageVerify,
	}
}

func messageSign(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]string{
		"message": c.String("message"),
		"secret":  c.String("secret"),
	}

	resp, err := client.Post(ctx, "/message/sign", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Signature string `json:"signature"`
		PublicKey string `json:"public_key"`
		Message   string `json:"message"`
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
		fmt.Printf("Signature:  %s\n", result.Signature)
		fmt.Printf("Public key: %s\n", result.PublicKey)
		return nil
	}
}

func messageVerify(c *cli.Context) error {
	client, err := EnsureConnected(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	body := map[string]string{
		"message":   c.String("message"),
		"signature": c.String("signature"),
		"pubkey":    c.String("pubkey"),
	}

	resp, err := client.Post(ctx, "/message/verify", body)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var result struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
		Pubkey  string `json:"pubkey"`
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
		if result.Valid {
			fmt.Printf("✓ Signature is valid\n")
			return nil
		}
		fmt.Printf("✗ Signature is invalid\n")
		return fmt.Errorf("signature verification failed")
	}
}
