// Package metric provides Prometheus metrics for SolGate.
//
// It exposes metrics in Prometheus format for monitoring
// request rates, latencies, and per-operation counters.
package metric

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "solgate"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	FailuresTotal   *prometheus.CounterVec

	// Operation metrics
	KeypairsGenerated prometheus.Counter
	MessagesSigned    prometheus.Counter
	Verifications     *prometheus.CounterVec
	InstructionsBuilt *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by method and route.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route"}),

		FailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Total number of failed requests by error code.",
		}, []string{"code"}),

		KeypairsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keypairs_generated_total",
			Help:      "Total number of keypairs generated.",
		}),

		MessagesSigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_signed_total",
			Help:      "Total number of messages signed.",
		}),

		Verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_total",
			Help:      "Total number of signature verifications by result.",
		}, []string{"result"}),

		InstructionsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "instructions_built_total",
			Help:      "Total number of instructions built by kind.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		NewBuildInfoCollector(),
		r.RequestsTotal,
		r.RequestDuration,
		r.FailuresTotal,
		r.KeypairsGenerated,
		r.MessagesSigned,
		r.Verifications,
		r.InstructionsBuilt,
	)

	return r
}

// RecordRequest increments the request counter.
func (r *Registry) RecordRequest(method, route, status string) {
	r.RequestsTotal.WithLabelValues(method, route, status).Inc()
}

// ObserveRequestDuration records a request latency observation.
func (r *Registry) ObserveRequestDuration(method, route string, seconds float64) {
	r.RequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// RecordFailure increments the failure counter for an error code.
func (r *Registry) RecordFailure(code string) {
	r.FailuresTotal.WithLabelValues(code).Inc()
}

// IncKeypairGenerated increments the keypair counter.
func (r *Registry) IncKeypairGenerated() {
	r.KeypairsGenerated.Inc()
}

// IncMessageSigned increments the signed message counter.
func (r *Registry) IncMessageSigned() {
	r.MessagesSigned.Inc()
}

// RecordVerification increments the verification counter.
// Result is "valid" or "invalid".
func (r *Registry) RecordVerification(result string) {
	r.Verifications.WithLabelValues(result).Inc()
}

// RecordInstruction increments the instruction counter for a kind
// (initialize_mint, mint_to, transfer_sol, transfer_token).
func (r *Registry) RecordInstruction(kind string) {
	r.InstructionsBuilt.WithLabelValues(kind).Inc()
}

// Handler returns an HTTP handler serving this registry's metrics.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide metrics registry.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
	})
	return global
}

// Handler returns an HTTP handler for the global registry.
func Handler() http.Handler {
	return Global().Handler()
}
