// Package handler provides HTTP request handlers for SolGate.
//
// This package implements the HTTP API endpoints for keypair generation,
// instruction building, and message signing and verification.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/solgate/solgate-go/internal/core/domain"
	"github.com/solgate/solgate-go/internal/core/service"
	"github.com/solgate/solgate-go/internal/telemetry/metric"
)

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	walletSvc *service.WalletService
	instrSvc  *service.InstructionService
	metrics   *metric.Registry
	logger    *slog.Logger
	mux       *http.ServeMux
}

// New creates a new Handler with the given services.
func New(walletSvc *service.WalletService, instrSvc *service.InstructionService, metrics *metric.Registry, logger *slog.Logger) *Handler {
	h := &Handler{
		walletSvc: walletSvc,
		instrSvc:  instrSvc,
		metrics:   metrics,
		logger:    logger,
		mux:       http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints
	h.mux.HandleFunc("GET /ping", h.handlePing)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Wallet endpoints
	h.mux.HandleFunc("POST /keypair", h.handleGenerateKeypair)
	h.mux.HandleFunc("POST /message/sign", h.handleSignMessage)
	h.mux.HandleFunc("POST /message/verify", h.handleVerifyMessage)

	// Instruction endpoints
	h.mux.HandleFunc("POST /token/create", h.handleCreateToken)
	h.mux.HandleFunc("POST /token/mint", h.handleMintToken)
	h.mux.HandleFunc("POST /send/sol", h.handleSendSOL)
	h.mux.HandleFunc("POST /send/token", h.handleSendToken)
}

// decodeBody decodes a JSON request body into target.
// A false return means the error response has already been written.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		h.writeFailure(w, r, http.StatusBadRequest, "SG-SYS-4000", "invalid request body")
		return false
	}
	return true
}

// writeSuccess writes a success envelope.
func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	requestID := getRequestID(r)

	w.Header().Set("Content-Type", "application/json")
	if requestID != "" {
		w.Header().Set("X-Request-ID", requestID)
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(NewSuccess(data)); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeFailure writes a failure envelope. The machine-readable error code
// travels in the X-Error-Code header; the body carries the message only.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID := getRequestID(r)

	if h.metrics != nil {
		h.metrics.RecordFailure(code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	if requestID != "" {
		w.Header().Set("X-Request-ID", requestID)
	}
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewFailure(message))
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		h.writeFailure(w, r, errorCodeToHTTPStatus(code), code, err.Error())
		return
	}

	h.logger.Error("internal error", "error", err, "path", r.URL.Path)
	h.writeFailure(w, r, http.StatusInternalServerError, "SG-SYS-5000", "internal server error")
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
// Validation and operation rejections are client errors.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasPrefix(code, "SG-VAL-"), strings.HasPrefix(code, "SG-OP-"):
		return http.StatusBadRequest
	case code == "SG-SYS-4000":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getRequestID extracts the request ID set by middleware.
func getRequestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}
