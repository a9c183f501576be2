// Package handler provides HTTP request handlers for SolGate.
package handler

import (
	"net/http"
	"time"

	"github.com/solgate/solgate-go/internal/infra/buildinfo"
)

// handlePing handles GET /ping.
func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, map[string]string{
		"message": "pong",
	})
}

// handleHealth handles GET /health.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, map[string]string{
		"status":  "healthy",
		"version": buildinfo.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady handles GET /ready.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, r, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
