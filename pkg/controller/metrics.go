package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "pcbinspect/pkg/controller"

// WithMetrics returns a middleware recording request duration per route,
// method and status code on a histogram from mp. The request is passed down
// unchanged so the pattern set by the mux stays visible to outer middlewares.
func WithMetrics(next http.Handler, mp metric.MeterProvider) (http.Handler, error) {
	duration, err := mp.Meter(meterName).Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("http.route", routeOf(r)),
			attribute.String("http.request.method", r.Method),
			attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
		))
	}), nil
}
