package benchmark

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/solgate/solgate-go/internal/core/service"
)

func newBenchPubkey(b *testing.B) string {
	b.Helper()
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		b.Fatal(err)
	}
	return key.PublicKey().String()
}

func BenchmarkInstruction_InitializeMint(b *testing.B) {
	svc := service.NewInstructionService()
	ctx := context.Background()

	authority := newBenchPubkey(b)
	mint := newBenchPubkey(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.InitializeMint(ctx, authority, mint, 9); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstruction_MintTo(b *testing.B) {
	svc := service.NewInstructionService()
	ctx := context.Background()

	mint := newBenchPubkey(b)
	destination := newBenchPubkey(b)
	authority := newBenchPubkey(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.MintTo(ctx, mint, destination, authority, 1_000_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstruction_TransferSOL(b *testing.B) {
	svc := service.NewInstructionService()
	ctx := context.Background()

	from := newBenchPubkey(b)
	to := newBenchPubkey(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.TransferSOL(ctx, from, to, 1_000_000_000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstruction_TransferToken(b *testing.B) {
	svc := service.NewInstructionService()
	ctx := context.Background()

	destination := newBenchPubkey(b)
	mint := newBenchPubkey(b)
	owner := newBenchPubkey(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.TransferToken(ctx, destination, mint, owner, 500); err != nil {
			b.Fatal(err)
		}
	}
}
