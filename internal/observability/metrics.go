package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the metric instruments for the filter pipeline.
type Metrics struct {
	scanDuration metric.Float64Histogram
	recordCount  metric.Int64Counter
	matchCount   metric.Int64Counter
	errorCount   metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Instrument creation only fails on invalid parameters; fall back
	// to the bare instrument so a partial failure never panics.
	var err error

	m.scanDuration, err = meter.Float64Histogram(
		"hawk.scan.duration",
		metric.WithDescription("Duration of record scans in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.scanDuration, _ = meter.Float64Histogram("hawk.scan.duration")
	}

	m.recordCount, err = meter.Int64Counter(
		"hawk.scan.records",
		metric.WithDescription("Total number of records evaluated"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		m.recordCount, _ = meter.Int64Counter("hawk.scan.records")
	}

	m.matchCount, err = meter.Int64Counter(
		"hawk.scan.matches",
		metric.WithDescription("Total number of records matching the filter"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		m.matchCount, _ = meter.Int64Counter("hawk.scan.matches")
	}

	m.errorCount, err = meter.Int64Counter(
		"hawk.scan.errors",
		metric.WithDescription("Total number of per-record evaluation errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("hawk.scan.errors")
	}

	return m
}

// RecordScan records the outcome of one full scan.
func (m *Metrics) RecordScan(ctx context.Context, duration time.Duration, records, matches int64, policy string) {
	attrs := metric.WithAttributes(attribute.String(AttrPolicy, policy))
	m.scanDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.recordCount.Add(ctx, records, attrs)
	m.matchCount.Add(ctx, matches, attrs)
}

// RecordEvalError counts one per-record evaluation error.
func (m *Metrics) RecordEvalError(ctx context.Context, policy string) {
	m.errorCount.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrPolicy, policy)))
}
