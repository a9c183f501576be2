// Package handler provides HTTP request handlers for SolGate.
package handler

import "net/http"

// handleGenerateKeypair handles POST /keypair.
func (h *Handler) handleGenerateKeypair(w http.ResponseWriter, r *http.Request) {
	kp, err := h.walletSvc.Generate(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.IncKeypairGenerated()
	}

	h.writeSuccess(w, r, KeypairResponse{
		Pubkey: kp.PublicKey,
		Secret: kp.Secret,
	})
}
