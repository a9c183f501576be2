// Package handler provides HTTP request handlers for SolGate.
package handler

import "net/http"

// handleSignMessage handles POST /message/sign.
func (h *Handler) handleSignMessage(w http.ResponseWriter, r *http.Request) {
	var req SignMessageRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	sig, err := h.walletSvc.Sign(r.Context(), req.Message, req.Secret)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncMessageSigned()
	}

	h.writeSuccess(w, r, SignMessageResponse{
		Signature: sig.Signature,
		PublicKey: sig.PublicKey,
		Message:   sig.Message,
	})
}

// handleVerifyMessage handles POST /message/verify.
// A signature that does not match is a normal valid=false result.
func (h *Handler) handleVerifyMessage(w http.ResponseWriter, r *http.Request) {
	var req VerifyMessageRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	res, err := h.walletSvc.Verify(r.Context(), req.Message, req.Signature, req.Pubkey)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		if res.Valid {
			h.metrics.RecordVerification("valid")
		} else {
			h.metrics.RecordVerification("invalid")
		}
	}

	h.writeSuccess(w, r, VerifyMessageResponse{
		Valid:   res.Valid,
		Message: res.Message,
		Pubkey:  res.PublicKey,
	})
}
