// Package handler provides HTTP request handlers for SolGate.
package handler

import (
	"net/http"

	"github.com/solgate/solgate-go/internal/core/domain"
)

// handleCreateToken handles POST /token/create.
func (h *Handler) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	var req CreateTokenRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if req.Decimals == nil {
		h.handleServiceError(w, r, domain.Required("decimals"))
		return
	}

	ix, err := h.instrSvc.InitializeMint(r.Context(), req.MintAuthority, req.Mint, *req.Decimals)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordInstruction("initialize_mint")
	}

	h.writeSuccess(w, r, newInstructionResponse(ix))
}

// handleMintToken handles POST /token/mint.
func (h *Handler) handleMintToken(w http.ResponseWriter, r *http.Request) {
	var req MintTokenRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if req.Amount == nil {
		h.handleServiceError(w, r, domain.Required("amount"))
		return
	}

	ix, err := h.instrSvc.MintTo(r.Context(), req.Mint, req.Destination, req.Authority, *req.Amount)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordInstruction("mint_to")
	}

	h.writeSuccess(w, r, newInstructionResponse(ix))
}
