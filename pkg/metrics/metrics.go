// Package metrics wires the OpenTelemetry metric API to the Prometheus
// exporter and provides the instruments recorded by the fetch orchestrator.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds
// reused across latency instruments.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider creates a meter provider that publishes through the
// default Prometheus registerer, so everything recorded here shows up on
// the ops server's metrics endpoint.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel prometheus exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Outcome labels recorded per fetch.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// FetchRecorder records per-domain fetch counts and latencies. A nil
// recorder is valid and records nothing, so metrics stay optional for
// one-shot CLI commands.
type FetchRecorder struct {
	fetches  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewFetchRecorder creates the orchestrator's fetch instruments on the
// given provider.
func NewFetchRecorder(mp metric.MeterProvider) (*FetchRecorder, error) {
	meter := mp.Meter("github.com/Ottocr/GEMS/orchestrator")

	fetches, err := meter.Int64Counter("gems_domain_fetches_total",
		metric.WithDescription("Number of domain fetches by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create fetch counter: %w", err)
	}

	duration, err := meter.Float64Histogram("gems_domain_fetch_duration_seconds",
		metric.WithDescription("Domain fetch latency in seconds"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create fetch duration histogram: %w", err)
	}

	return &FetchRecorder{fetches: fetches, duration: duration}, nil
}

// Record registers one finished fetch attempt for the named domain.
func (r *FetchRecorder) Record(ctx context.Context, domain, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("outcome", outcome),
	)
	r.fetches.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}
