// Package metrics exposes Prometheus collectors for the order service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

type ServerMetrics struct {
	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	Transitions *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewServerMetrics registers the collectors on a private registry so that
// several instances can coexist in one process.
func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_transitions_total",
		Help:      "Order status changes committed, by target status.",
	}, []string{"to"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, latency, transitions)

	return &ServerMetrics{
		Requests:    requests,
		LatencyMS:   latency,
		Transitions: transitions,
		registry:    registry,
	}
}

func (m *ServerMetrics) TransitionInc(to string) {
	m.Transitions.WithLabelValues(to).Inc()
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
