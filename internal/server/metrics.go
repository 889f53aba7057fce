package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors exposed on /metrics. They live
// on a private registry so the endpoint carries only resolver metrics.
type metrics struct {
	registry *prometheus.Registry
	resolves *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		resolves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uitrail_resolve_total",
				Help: "Total number of resolve calls by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "uitrail_resolve_duration_seconds",
				Help: "Duration of resolve calls",
			},
			[]string{"outcome"},
		),
	}
	m.registry.MustRegister(m.resolves, m.duration)
	return m
}

// observe records one resolve call. Outcome is "ok" when a path was found
// and "miss" when the resolver came up empty.
func (m *metrics) observe(outcome string, seconds float64) {
	m.resolves.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(seconds)
}
