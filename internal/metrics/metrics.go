// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Transitions counts state machine evaluations by machine, action and outcome
	// ("applied", "rejected", "failed", "pending_confirmation").
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_transitions_total",
			Help: "Total number of guestlist and membership transitions",
		},
		[]string{"machine", "action", "outcome"},
	)

	SyncSnapshots = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_sync_snapshots_total",
			Help: "Total number of snapshots applied by synchronization adapters",
		},
		[]string{"collection"},
	)

	SyncErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_sync_errors_total",
			Help: "Total number of synchronization errors",
		},
		[]string{"collection", "stage"},
	)

	SyncSubscriptions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mixer_sync_subscriptions",
			Help: "Current number of active feed subscriptions",
		},
		[]string{"collection"},
	)

	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_notifications_total",
			Help: "Total number of outbound notifications by result",
		},
		[]string{"kind", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mixer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mixer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mixer_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mixer_live_sessions",
			Help: "Current number of connected live websocket sessions",
		},
	)
)
