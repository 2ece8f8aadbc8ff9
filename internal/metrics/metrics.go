// Package metrics exposes Prometheus collectors for the gift economy and the
// HTTP surface. Each Metrics owns its registry, so tests and multiple servers
// in one process never collide on registration.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petmemorial"

// Placement results recorded by the gift service.
const (
	ResultPlaced            = "placed"
	ResultSlotOccupied      = "slot_occupied"
	ResultInsufficientFunds = "insufficient_funds"
	ResultNotFound          = "not_found"
	ResultInvalid           = "invalid"
	ResultError             = "error"
)

// Metrics holds the application's collectors.
type Metrics struct {
	registry *prometheus.Registry

	placements    *prometheus.CounterVec
	coinsSpent    prometheus.Counter
	coinsToppedUp prometheus.Counter
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	httpPanics    prometheus.Counter
}

// New creates a Metrics with a fresh registry. Go runtime and process
// collectors are registered alongside the application ones.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		placements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gift_placements_total",
			Help:      "Gift placement attempts by result.",
		}, []string{"result"}),
		coinsSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_spent_total",
			Help:      "Coins debited by successful gift placements.",
		}),
		coinsToppedUp: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coins_topped_up_total",
			Help:      "Coins credited by wallet top-ups.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		httpPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_panics_total",
			Help:      "Handler panics recovered by the HTTP middleware.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.placements,
		m.coinsSpent,
		m.coinsToppedUp,
		m.httpRequests,
		m.httpDuration,
		m.httpPanics,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PlacementAttempt records the outcome of a placement. spent is added to the
// coins counter only for successful placements.
func (m *Metrics) PlacementAttempt(result string, spent int64) {
	m.placements.WithLabelValues(result).Inc()
	if result == ResultPlaced && spent > 0 {
		m.coinsSpent.Add(float64(spent))
	}
}

// TopUp records coins credited to a wallet.
func (m *Metrics) TopUp(amount int64) {
	if amount > 0 {
		m.coinsToppedUp.Add(float64(amount))
	}
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// Panic records a recovered handler panic.
func (m *Metrics) Panic() {
	m.httpPanics.Inc()
}
