// Package metrics holds the Prometheus collectors for the scoring service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cobalt"

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide. It satisfies scoring.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	factorDuration *prometheus.HistogramVec
	degraded       *prometheus.CounterVec
	scopes         *prometheus.CounterVec
	designOps      *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	eventsFailed   prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.factorDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "factor_scoring_duration_seconds",
			Help:      "Time spent scoring one design factor across all objectives.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
		[]string{"factor"},
	)
	m.degraded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_objectives_total",
			Help:      "Objective rows scored as zero after a failure or non-finite result.",
		},
		[]string{"factor"},
	)
	m.scopes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scope_computations_total",
			Help:      "Scope aggregations computed, by stage.",
		},
		[]string{"stage"},
	)
	m.designOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "design_operations_total",
			Help:      "Design persistence operations, by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route pattern, method and status code.",
		},
		[]string{"route", "method", "status"},
	)
	m.eventsFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "event_publish_failures_total",
		Help:      "Events that could not be published to the bus.",
	})

	m.registry.MustRegister(
		m.factorDuration, m.degraded, m.scopes, m.designOps, m.httpRequests, m.eventsFailed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveFactor(factorID string, d time.Duration) {
	m.factorDuration.WithLabelValues(factorID).Observe(d.Seconds())
}

func (m *Metrics) DegradedObjective(factorID string) {
	m.degraded.WithLabelValues(factorID).Inc()
}

func (m *Metrics) ScopeComputed(stage string) {
	m.scopes.WithLabelValues(stage).Inc()
}

// DesignOp counts a store operation; outcome is "ok", "not_found" or "error".
func (m *Metrics) DesignOp(op, outcome string) {
	m.designOps.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) HTTPRequest(route, method string, status int) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) EventPublishFailed() {
	m.eventsFailed.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
