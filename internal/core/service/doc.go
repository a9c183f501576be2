// Package service provides domain services for SolGate.
//
// Domain services contain the request validation layer and delegate every
// cryptographic and chain-specific operation to the Solana SDK
// (github.com/gagliardetto/solana-go), which is treated as an audited
// black box.
//
// This package contains:
//
//   - WalletService: keypair generation, message signing and verification
//   - InstructionService: unsigned instruction construction (initialize
//     mint, mint-to, SOL transfer, SPL token transfer)
//
// Services are stateless and thread-safe. Every operation is a pure,
// idempotent, single-shot computation: no state is retained between
// calls and no two calls interact.
package service
