// Package codec provides base58/base64 encoding helpers.
package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
)

// Well-known byte lengths for Solana key material.
const (
	// PublicKeyLength is the raw length of an ed25519 public key.
	PublicKeyLength = 32

	// SecretKeyLength is the raw length of a Solana secret key
	// (32-byte seed followed by the 32-byte public key).
	SecretKeyLength = 64

	// SignatureLength is the raw length of an ed25519 signature.
	SignatureLength = 64
)

// DecodeBase58 decodes a base58 string into raw bytes.
func DecodeBase58(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base58: %w", err)
	}
	return b, nil
}

// DecodeBase58Len decodes a base58 string and requires an exact byte length.
func DecodeBase58Len(s string, want int) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, fmt.Errorf("expected %d bytes, got %d", want, len(b))
	}
	return b, nil
}

// EncodeBase58 encodes raw bytes as a base58 string.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase64 decodes a standard base64 string into raw bytes.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return b, nil
}

// DecodeBase64Len decodes a base64 string and requires an exact byte length.
func DecodeBase64Len(s string, want int) ([]byte, error) {
	b, err := DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	if len(b) != want {
		return nil, fmt.Errorf("expected %d bytes, got %d", want, len(b))
	}
	return b, nil
}

// EncodeBase64 encodes raw bytes as a standard base64 string.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}
