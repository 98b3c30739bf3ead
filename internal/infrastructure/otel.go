package infrastructure

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "o3profile"

// Telemetry holds the OpenTelemetry meter provider, the pipeline instruments,
// and the Prometheus scrape handler.
type Telemetry struct {
	provider *sdkmetric.MeterProvider

	// PrometheusHTTP serves the /metrics scrape endpoint.
	PrometheusHTTP http.Handler

	BuildCount    metric.Int64Counter
	BuildFailures metric.Int64Counter
	BuildDuration metric.Float64Histogram
}

// InitTelemetry creates the meter provider with a Prometheus exporter and the
// pipeline instruments, and installs the provider globally.
func InitTelemetry() (*Telemetry, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(meterName)

	t := &Telemetry{
		provider:       provider,
		PrometheusHTTP: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	if t.BuildCount, err = meter.Int64Counter("profile_builds_total",
		metric.WithDescription("Completed profile pipeline runs")); err != nil {
		return nil, fmt.Errorf("create build counter: %w", err)
	}
	if t.BuildFailures, err = meter.Int64Counter("profile_build_failures_total",
		metric.WithDescription("Profile pipeline runs that ended in an error")); err != nil {
		return nil, fmt.Errorf("create failure counter: %w", err)
	}
	if t.BuildDuration, err = meter.Float64Histogram("profile_build_duration_seconds",
		metric.WithDescription("Wall time of one profile pipeline run"),
		metric.WithUnit("s")); err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return t, nil
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
