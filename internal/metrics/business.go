package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records use case outcomes. Domain is the module name
// ("client", "ledger", "report" ...), operation names the use case method
// ("entry_create", "bas_summary") and status is "success" or "error".
type BusinessMetrics interface {
	RecordOperation(ctx context.Context, domain, operation, status string)
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordImportRows adds count CSV rows with the given classification
	// ("valid", "invalid", "duplicate", "committed").
	RecordImportRows(ctx context.Context, status string, count int)
}

type businessMetrics struct {
	operations metric.Int64Counter
	durations  metric.Float64Histogram
	importRows metric.Int64Counter
}

// NewBusinessMetrics registers the business instruments on meterProvider.
// Every instrument name is prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)
	name := func(suffix string) string { return namespace + "_" + suffix }

	operations, err := meter.Int64Counter(name("operations_total"),
		metric.WithDescription("Use case invocations by domain, operation and status"),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create operations counter: %w", err)
	}

	durations, err := meter.Float64Histogram(name("operation_duration_seconds"),
		metric.WithDescription("Use case latency in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	importRows, err := meter.Int64Counter(name("import_rows_total"),
		metric.WithDescription("CSV import rows by classification"),
		metric.WithUnit("{row}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create import rows counter: %w", err)
	}

	return &businessMetrics{operations: operations, durations: durations, importRows: importRows}, nil
}

func operationAttrs(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operations.Add(ctx, 1, operationAttrs(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durations.Record(ctx, duration.Seconds(), operationAttrs(domain, operation, status))
}

// RecordImportRows ignores non-positive counts so empty classes never appear as series.
func (b *businessMetrics) RecordImportRows(ctx context.Context, status string, count int) {
	if count <= 0 {
		return
	}
	b.importRows.Add(ctx, int64(count), metric.WithAttributes(attribute.String("status", status)))
}

// NoOpBusinessMetrics discards everything. It is used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics returns a BusinessMetrics that records nothing.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return NoOpBusinessMetrics{}
}

func (NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (NoOpBusinessMetrics) RecordImportRows(context.Context, string, int) {}
