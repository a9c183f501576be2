// Package metric provides Prometheus metrics for SolGate.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/solgate/solgate-go/internal/infra/buildinfo"
)

// buildInfoCollector exposes build metadata as a constant gauge.
type buildInfoCollector struct {
	desc *prometheus.Desc
}

// NewBuildInfoCollector creates a collector exposing a solgate_build_info
// gauge with version, commit and go_version labels, always set to 1.
func NewBuildInfoCollector() prometheus.Collector {
	return &buildInfoCollector{
		desc: prometheus.NewDesc(
			namespace+"_build_info",
			"Build information for the running binary.",
			nil,
			prometheus.Labels{
				"version":    buildinfo.Version,
				"commit":     buildinfo.Commit,
				"go_version": buildinfo.GoVersion,
			},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *buildInfoCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *buildInfoCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1)
}
