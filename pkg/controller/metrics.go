package controller

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"shortener/pkg/metrics"
)

// WithRequestMetrics returns a middleware recording per-request count and
// latency through the provided OpenTelemetry meter provider. Metrics are
// labeled by method and status code; paths are deliberately not used as
// labels because short codes would explode cardinality.
func WithRequestMetrics(mp metric.MeterProvider, next http.Handler) http.Handler {
	meter := mp.Meter("shortener/api")

	requests, _ := meter.Int64Counter("http_requests_total",
		metric.WithDescription("Handled HTTP requests."))
	latency, _ := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request latency in seconds."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
	})
}
