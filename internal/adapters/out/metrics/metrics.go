// Package metrics exports Prometheus metrics for the HTTP surface, leg
// transitions and the stale-dispatch report.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ ports.TransitionRecorder = (*Metrics)(nil)

// Metrics owns every collector of the service. Collectors are registered on
// the registry given to New, so tests can use a private one.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	legTransitionsTotal *prometheus.CounterVec
	staleDispatches     *prometheus.GaugeVec
	gatherer            prometheus.Gatherer
}

// New creates and registers the collectors. It panics on duplicate
// registration, like prometheus.MustRegister.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
		legTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "delivery_leg_transitions_total",
				Help: "Committed delivery transitions by leg kind and resulting status",
			},
			[]string{"kind", "status"},
		),
		staleDispatches: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "delivery_legs_stale_dispatched",
				Help: "Legs that have stayed DISPATCHED longer than the configured threshold",
			},
			[]string{"kind"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.legTransitionsTotal,
		m.staleDispatches,
	)
	return m
}

// ObserveRequest records one served HTTP request. handler is the route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(handler, method string, status int, elapsed time.Duration) {
	m.httpRequestDuration.WithLabelValues(handler, method).Observe(elapsed.Seconds())
	m.httpRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(status)).Inc()
}

// RecordTransition counts a committed leg or legacy sub-state transition.
func (m *Metrics) RecordTransition(kind tracking.LegKind, status string) {
	m.legTransitionsTotal.WithLabelValues(string(kind), status).Inc()
}

// SetStaleDispatches publishes the latest stale-dispatch count for kind.
func (m *Metrics) SetStaleDispatches(kind tracking.LegKind, count int) {
	m.staleDispatches.WithLabelValues(string(kind)).Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
