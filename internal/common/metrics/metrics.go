// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of gateway requests by operation",
		},
		[]string{"op"},
	)

	GatewayRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_failed_total",
			Help: "Total number of failed gateway requests by operation and error code",
		},
		[]string{"op", "error_code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_request_duration_seconds",
			Help: "Duration of gateway requests in seconds",
		},
		[]string{"op"},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_transitions_total",
			Help: "Session state transitions by kind",
		},
		[]string{"kind"},
	)
)
