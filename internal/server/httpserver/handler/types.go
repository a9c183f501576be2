// Package handler provides HTTP request handlers for SolGate.
package handler

import (
	"github.com/solgate/solgate-go/internal/core/domain"
	"github.com/solgate/solgate-go/pkg/codec"
)

// Response is the standard API response envelope.
// Every JSON response is exactly one of success or failure:
// {"success": true, "data": {...}} or {"success": false, "error": "..."}.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccess creates a success envelope.
func NewSuccess(data any) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// NewFailure creates a failure envelope.
func NewFailure(message string) *Response {
	return &Response{
		Success: false,
		Error:   message,
	}
}

// KeypairResponse is the response body for POST /keypair.
type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// InstructionResponse is the response body for the instruction-building
// endpoints. Instruction data is base64; addresses are base58.
type InstructionResponse struct {
	ProgramID       string               `json:"program_id"`
	Accounts        []domain.AccountMeta `json:"accounts"`
	InstructionData string               `json:"instruction_data"`
}

// newInstructionResponse flattens a domain instruction for the wire.
func newInstructionResponse(ix *domain.Instruction) InstructionResponse {
	return InstructionResponse{
		ProgramID:       ix.ProgramID,
		Accounts:        ix.Accounts,
		InstructionData: codec.EncodeBase64(ix.Data),
	}
}

// CreateTokenRequest is the request body for POST /token/create.
type CreateTokenRequest struct {
	MintAuthority string `json:"mintAuthority"`
	Mint          string `json:"mint"`
	Decimals      *int64 `json:"decimals"`
}

// MintTokenRequest is the request body for POST /token/mint.
type MintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      *int64 `json:"amount"`
}

// SignMessageRequest is the request body for POST /message/sign.
type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

// SignMessageResponse is the response body for POST /message/sign.
type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageRequest is the request body for POST /message/verify.
type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

// VerifyMessageResponse is the response body for POST /message/verify.
type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}

// SendSOLRequest is the request body for POST /send/sol.
type SendSOLRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports *int64 `json:"lamports"`
}

// SendTokenRequest is the request body for POST /send/token.
type SendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      *int64 `json:"amount"`
}
