package controller

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nailuj1992/polls-api/pkg/metrics"
)

const meterName = "github.com/nailuj1992/polls-api/pkg/controller"

// WithMetrics returns a middleware recording the duration of every request in
// an OpenTelemetry histogram, labelled by method, matched route pattern and
// status code. next is expected to be the ServeMux so the pattern is known
// once it returns.
func WithMetrics(mp metric.MeterProvider, next http.Handler) (http.Handler, error) {
	duration, err := mp.Meter(meterName).Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.Int("http.response.status_code", rec.status),
		))
	}), nil
}
