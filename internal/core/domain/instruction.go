// Package domain defines the core domain models for SolGate.
package domain

// AccountMeta describes one account referenced by an instruction.
type AccountMeta struct {
	// Pubkey is the base58-encoded account address.
	Pubkey string `json:"pubkey"`

	// IsSigner indicates the account must sign the enclosing transaction.
	IsSigner bool `json:"is_signer"`

	// IsWritable indicates the instruction may mutate the account.
	IsWritable bool `json:"is_writable"`
}

// Instruction is an unsigned, unsubmitted directive for one on-chain
// operation. It is created fresh per request and never stored; a client
// assembles and signs the actual transaction elsewhere.
type Instruction struct {
	// ProgramID is the base58-encoded address of the program that will
	// execute the instruction.
	ProgramID string

	// Accounts is the ordered account list the program expects.
	Accounts []AccountMeta

	// Data is the raw instruction payload.
	Data []byte
}

// Keypair is a freshly generated ed25519 keypair. It is returned to the
// caller exactly once; the server retains no key material afterwards.
type Keypair struct {
	// PublicKey is the base58-encoded public key.
	PublicKey string

	// Secret is the base58-encoded 64-byte secret key
	// (seed followed by public key).
	Secret string
}

// Signature is the outcome of signing a message.
type Signature struct {
	// Signature is the base64-encoded 64-byte ed25519 signature.
	Signature string

	// PublicKey is the base58-encoded public key of the signer.
	PublicKey string

	// Message is the signed message, echoed back verbatim.
	Message string
}

// Verification is the outcome of verifying a signed message.
// An invalid signature is a normal false result, not an error.
type Verification struct {
	Valid     bool
	Message   string
	PublicKey string
}
