package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "delivery_client",
			Name:      "requests_total",
			Help:      "HTTP requests sent, by API namespace, status code and method.",
		},
		[]string{"namespace", "code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "delivery_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"namespace", "method"},
	)

	textFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "delivery_client",
			Name:      "decode_fallbacks_total",
			Help:      "Successful responses whose body was not JSON and was returned as text.",
		},
		[]string{"namespace"},
	)
)

// instrument wraps next with request counting and latency observation.
func instrument(namespace string, next http.RoundTripper) http.RoundTripper {
	labels := prometheus.Labels{"namespace": namespace}
	return promhttp.InstrumentRoundTripperCounter(
		requestsTotal.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(requestDuration.MustCurryWith(labels), next),
	)
}
