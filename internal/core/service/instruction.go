// Package service provides domain services for SolGate.
package service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/solgate/solgate-go/internal/core/domain"
)

// MaxDecimals is the largest accepted mint precision. Solana mints
// conventionally stay at or below 9; 18 matches ERC-20 style tokens.
const MaxDecimals = 18

// InstructionService builds unsigned, unsubmitted instructions.
//
// Nothing is ever sent to a network: the caller receives the program id,
// ordered account metas and raw instruction data, and assembles a
// transaction elsewhere.
type InstructionService struct{}

// NewInstructionService creates a new InstructionService.
func NewInstructionService() *InstructionService {
	return &InstructionService{}
}

// InitializeMint builds an SPL token initialize-mint instruction.
// The mint authority is also installed as the freeze authority.
func (s *InstructionService) InitializeMint(_ context.Context, mintAuthority, mint string, decimals int64) (*domain.Instruction, error) {
	authority, err := parsePubkey("mintAuthority", mintAuthority)
	if err != nil {
		return nil, err
	}
	mintKey, err := parsePubkey("mint", mint)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, domain.Validation("decimals", "must be between 0 and 18")
	}

	ix, err := token.NewInitializeMintInstruction(
		uint8(decimals),
		authority,
		authority,
		mintKey,
		solana.SysVarRentPubkey,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.Operation("failed to build initialize mint instruction", err)
	}

	return toDomain(ix)
}

// MintTo builds an SPL token mint-to instruction.
func (s *InstructionService) MintTo(_ context.Context, mint, destination, authority string, amount int64) (*domain.Instruction, error) {
	mintKey, err := parsePubkey("mint", mint)
	if err != nil {
		return nil, err
	}
	dest, err := parsePubkey("destination", destination)
	if err != nil {
		return nil, err
	}
	auth, err := parsePubkey("authority", authority)
	if err != nil {
		return nil, err
	}
	if amount < 1 {
		return nil, domain.Validation("amount", "must be at least 1")
	}

	ix, err := token.NewMintToInstruction(
		uint64(amount),
		mintKey,
		dest,
		auth,
		nil,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.Operation("failed to build mint instruction", err)
	}

	return toDomain(ix)
}

// TransferSOL builds a system program lamport transfer instruction.
func (s *InstructionService) TransferSOL(_ context.Context, from, to string, lamports int64) (*domain.Instruction, error) {
	fromKey, err := parsePubkey("from", from)
	if err != nil {
		return nil, err
	}
	toKey, err := parsePubkey("to", to)
	if err != nil {
		return nil, err
	}
	if lamports < 1 {
		return nil, domain.Validation("lamports", "must be at least 1")
	}

	ix, err := system.NewTransferInstruction(
		uint64(lamports),
		fromKey,
		toKey,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.Operation("failed to build transfer instruction", err)
	}

	return toDomain(ix)
}

// TransferToken builds an SPL token transfer instruction. The source token
// account is the associated token account of (owner, mint); the destination
// is used as a token account address directly.
func (s *InstructionService) TransferToken(_ context.Context, destination, mint, owner string, amount int64) (*domain.Instruction, error) {
	dest, err := parsePubkey("destination", destination)
	if err != nil {
		return nil, err
	}
	mintKey, err := parsePubkey("mint", mint)
	if err != nil {
		return nil, err
	}
	ownerKey, err := parsePubkey("owner", owner)
	if err != nil {
		return nil, err
	}
	if amount < 1 {
		return nil, domain.Validation("amount", "must be at least 1")
	}

	source, _, err := solana.FindAssociatedTokenAddress(ownerKey, mintKey)
	if err != nil {
		return nil, domain.Operation("failed to derive source token account", err)
	}

	ix, err := token.NewTransferInstruction(
		uint64(amount),
		source,
		dest,
		ownerKey,
		nil,
	).ValidateAndBuild()
	if err != nil {
		return nil, domain.Operation("failed to build token transfer instruction", err)
	}

	return toDomain(ix)
}

// toDomain flattens an SDK instruction into its wire-facing parts.
func toDomain(ix solana.Instruction) (*domain.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, domain.Operation("failed to encode instruction data", err)
	}

	metas := ix.Accounts()
	accounts := make([]domain.AccountMeta, 0, len(metas))
	for _, m := range metas {
		accounts = append(accounts, domain.AccountMeta{
			Pubkey:     m.PublicKey.String(),
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
		})
	}

	return &domain.Instruction{
		ProgramID: ix.ProgramID().String(),
		Accounts:  accounts,
		Data:      data,
	}, nil
}
