package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		orderCreateRequests,
		orderCreateDuration,
		paymentVerifyRequests,
		paymentVerifyDuration,
	)
}

var (
	// Count of create-order calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): bad_json|amount_too_small|upstream_error|upstream_timeout|unknown
	orderCreateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_order_create_requests_total",
			Help: "Count of create-order calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	orderCreateDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_order_create_duration_seconds",
			Help:    "Duration of the create-order handler in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)

	// Count of verify calls grouped by result and bounded reason.
	// result: ok|fail
	// reason (fail only): bad_json|missing_fields|invalid_signature|upstream_timeout|fetch_error|unknown
	paymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of verify-payment calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	paymentVerifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_verify_duration_seconds",
			Help:    "Duration of the verify-payment handler in seconds.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"result"},
	)
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func ObserveOrderCreate(result, reason string, seconds float64) {
	orderCreateRequests.WithLabelValues(norm(result), norm(reason)).Inc()
	orderCreateDuration.WithLabelValues(norm(result)).Observe(seconds)
}

func ObserveVerify(result, reason string, seconds float64) {
	paymentVerifyRequests.WithLabelValues(norm(result), norm(reason)).Inc()
	paymentVerifyDuration.WithLabelValues(norm(result)).Observe(seconds)
}
