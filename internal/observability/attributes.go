// Package observability provides OpenTelemetry tracing and metrics
// wrappers for filter compilation and record scanning. All helpers
// default to no-op implementations, so instrumentation is free unless
// a real provider is configured.
package observability

import "go.opentelemetry.io/otel/attribute"

const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/hawkql/hawk"

	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/hawkql/hawk"

	// Span attribute keys.
	AttrQuery       = "hawk.query"
	AttrPolicy      = "hawk.scan.policy"
	AttrRecordCount = "hawk.scan.records"
	AttrMatchCount  = "hawk.scan.matches"

	// Log field names for trace correlation.
	LogFieldTraceID = "trace_id"
	LogFieldSpanID  = "span_id"
)

// QueryAttr returns the query-text attribute.
func QueryAttr(query string) attribute.KeyValue {
	return attribute.String(AttrQuery, query)
}

// PolicyAttr returns the scan error-policy attribute.
func PolicyAttr(policy string) attribute.KeyValue {
	return attribute.String(AttrPolicy, policy)
}

// RecordCountAttr returns the scanned-record-count attribute.
func RecordCountAttr(n int64) attribute.KeyValue {
	return attribute.Int64(AttrRecordCount, n)
}

// MatchCountAttr returns the matched-record-count attribute.
func MatchCountAttr(n int64) attribute.KeyValue {
	return attribute.Int64(AttrMatchCount, n)
}
