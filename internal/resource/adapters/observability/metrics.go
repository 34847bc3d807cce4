package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// serviceMetrics holds the operation counters. All fields stay nil when no
// meter is configured, turning every record call into a no-op.
type serviceMetrics struct {
	operations metric.Int64Counter
	failures   metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	var metrics serviceMetrics
	metrics.operations, _ = m.Int64Counter(
		"resource.operations",
		metric.WithDescription("completed document operations per collection"),
	)
	metrics.failures, _ = m.Int64Counter(
		"resource.operation.failures",
		metric.WithDescription("failed document operations per collection"),
	)
	return metrics
}

func (m serviceMetrics) record(ctx context.Context, collection, operation string) {
	if m.operations == nil {
		return
	}
	m.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", collection),
		attribute.String("operation", operation),
	))
}

func (m serviceMetrics) recordFailure(ctx context.Context, collection string) {
	if m.failures == nil {
		return
	}
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collection", collection),
	))
}
