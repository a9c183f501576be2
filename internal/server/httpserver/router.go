// Package httpserver provides the HTTP/HTTPS server for SolGate.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/solgate/solgate-go/internal/core/service"
	"github.com/solgate/solgate-go/internal/server/httpserver/handler"
	"github.com/solgate/solgate-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// WalletService handles keypair generation and message signing.
	WalletService *service.WalletService

	// InstructionService builds unsigned instructions.
	InstructionService *service.InstructionService

	// Logger for request logging.
	Logger *slog.Logger

	// Metrics is the metrics registry. Nil disables metric recording
	// and the /metrics endpoint.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// MaxBodyBytes caps the request body size (0 = no limit).
	MaxBodyBytes int64

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	// Create handler with services
	h := handler.New(cfg.WalletService, cfg.InstructionService, cfg.Metrics, cfg.Logger)

	// Build middleware chain for the operation endpoints.
	// Order of execution: Recover -> CORS -> RequestID -> BodyLimit -> Audit -> Metrics -> Handler
	middlewares := []Middleware{
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.MaxBodyBytes > 0 {
		middlewares = append(middlewares, BodyLimit(cfg.MaxBodyBytes))
	}
	if cfg.EnableAudit {
		middlewares = append(middlewares, Audit(cfg.Logger))
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, Metrics(cfg.Metrics))
	}

	opHandler := Chain(h, middlewares...)

	mux := http.NewServeMux()

	// Health endpoints - minimal middleware
	healthHandler := Chain(h, RequestID(), Recover(cfg.Logger))
	mux.Handle("GET /ping", healthHandler)
	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /ready", healthHandler)

	// Metrics endpoint - Prometheus exposition format, no envelope
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(cfg.Logger)))
	}

	// Wallet endpoints
	mux.Handle("POST /keypair", opHandler)
	mux.Handle("POST /message/sign", opHandler)
	mux.Handle("POST /message/verify", opHandler)

	// Instruction endpoints
	mux.Handle("POST /token/create", opHandler)
	mux.Handle("POST /token/mint", opHandler)
	mux.Handle("POST /send/sol", opHandler)
	mux.Handle("POST /send/token", opHandler)

	return mux
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
		EnableAudit:        true,
	}
}
