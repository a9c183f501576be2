// Package service provides domain services for SolGate.
package service

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"errors"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate-go/internal/core/domain"
	"github.com/solgate/solgate-go/pkg/codec"
)

// WalletService handles keypair generation and message signing/verification.
//
// The service holds no key material of its own: generated keypairs are
// returned to the caller once and forgotten, and secrets supplied for
// signing live only for the duration of the call.
type WalletService struct{}

// NewWalletService creates a new WalletService.
func NewWalletService() *WalletService {
	return &WalletService{}
}

// Generate creates a fresh random ed25519 keypair.
func (s *WalletService) Generate(_ context.Context) (*domain.Keypair, error) {
	priv, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, domain.Operation("failed to generate keypair", err)
	}

	return &domain.Keypair{
		PublicKey: priv.PublicKey().String(),
		Secret:    priv.String(),
	}, nil
}

// Sign signs a UTF-8 message with a base58-encoded 64-byte secret key.
func (s *WalletService) Sign(_ context.Context, message, secret string) (*domain.Signature, error) {
	if message == "" {
		return nil, domain.Required("message")
	}
	priv, err := parseSecret(secret)
	if err != nil {
		return nil, err
	}

	sig, err := priv.Sign([]byte(message))
	if err != nil {
		return nil, domain.Operation("failed to sign message", err)
	}

	return &domain.Signature{
		Signature: codec.EncodeBase64(sig[:]),
		PublicKey: priv.PublicKey().String(),
		Message:   message,
	}, nil
}

// Verify checks a base64-encoded signature over a message against a
// base58-encoded public key. A signature that does not match is a normal
// Valid=false result, not an error.
func (s *WalletService) Verify(_ context.Context, message, signature, pubkey string) (*domain.Verification, error) {
	if message == "" {
		return nil, domain.Required("message")
	}
	pub, err := parsePubkey("pubkey", pubkey)
	if err != nil {
		return nil, err
	}
	if signature == "" {
		return nil, domain.Required("signature")
	}
	raw, err := codec.DecodeBase64Len(signature, codec.SignatureLength)
	if err != nil {
		return nil, domain.Validation("signature", err.Error())
	}

	sig := solana.SignatureFromBytes(raw)

	return &domain.Verification{
		Valid:     sig.Verify(pub, []byte(message)),
		Message:   message,
		PublicKey: pubkey,
	}, nil
}

// parsePubkey decodes a base58 field into a 32-byte public key.
func parsePubkey(field, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.PublicKey{}, domain.Required(field)
	}
	raw, err := codec.DecodeBase58Len(value, codec.PublicKeyLength)
	if err != nil {
		return solana.PublicKey{}, domain.Validation(field, err.Error())
	}
	return solana.PublicKeyFromBytes(raw), nil
}

// parseSecret decodes a base58 secret key and checks that the embedded
// public key matches the one derived from the seed. A well-encoded secret
// with a mismatched half decodes fine but cannot sign for its claimed key.
func parseSecret(value string) (solana.PrivateKey, error) {
	if value == "" {
		return nil, domain.Required("secret")
	}
	raw, err := codec.DecodeBase58Len(value, codec.SecretKeyLength)
	if err != nil {
		return nil, domain.Validation("secret", err.Error())
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, domain.Operation("invalid secret key", errors.New("public key does not match seed"))
	}

	return solana.PrivateKey(raw), nil
}
