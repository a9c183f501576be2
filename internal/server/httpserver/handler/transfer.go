// Package handler provides HTTP request handlers for SolGate.
package handler

import (
	"net/http"

	"github.com/solgate/solgate-go/internal/core/domain"
)

// handleSendSOL handles POST /send/sol.
func (h *Handler) handleSendSOL(w http.ResponseWriter, r *http.Request) {
	var req SendSOLRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if req.Lamports == nil {
		h.handleServiceError(w, r, domain.Required("lamports"))
		return
	}

	ix, err := h.instrSvc.TransferSOL(r.Context(), req.From, req.To, *req.Lamports)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordInstruction("transfer_sol")
	}

	h.writeSuccess(w, r, newInstructionResponse(ix))
}

// handleSendToken handles POST /send/token.
func (h *Handler) handleSendToken(w http.ResponseWriter, r *http.Request) {
	var req SendTokenRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if req.Amount == nil {
		h.handleServiceError(w, r, domain.Required("amount"))
		return
	}

	ix, err := h.instrSvc.TransferToken(r.Context(), req.Destination, req.Mint, req.Owner, *req.Amount)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordInstruction("transfer_token")
	}

	h.writeSuccess(w, r, newInstructionResponse(ix))
}
