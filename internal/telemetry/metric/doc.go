// Package metric provides Prometheus metrics for SolGate.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry, collectors and HTTP handler
//   - collector.go: Build info collector
//
// Metrics include:
//
//   - Request counters and latency histograms per route
//   - Failure counters per error code
//   - Operation counters (keypairs, signatures, verifications,
//     built instructions)
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
