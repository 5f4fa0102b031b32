package hawk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/hawkql/hawk/internal/observability"
)

// Source produces an ordered sequence of records. Next returns io.EOF
// after the last record.
type Source interface {
	Next() (Record, error)
}

// ErrorPolicy controls how a Scanner treats a per-record evaluation
// error. The two policies produce materially different results on
// malformed data, so the choice is explicit rather than assumed.
type ErrorPolicy int

const (
	// FailClosed aborts the entire scan on the first per-record
	// error. This is the default.
	FailClosed ErrorPolicy = iota

	// FailOpen treats a failing record as excluded and continues,
	// logging the error at Warn level.
	FailOpen
)

// String returns the policy name.
func (p ErrorPolicy) String() string {
	if p == FailOpen {
		return "fail-open"
	}
	return "fail-closed"
}

// Scanner runs a compiled Filter over a record source, applying the
// configured per-record error policy.
type Scanner struct {
	filter  *Filter
	policy  ErrorPolicy
	logger  *slog.Logger
	tracer  *observability.Tracer
	metrics *observability.Metrics
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithErrorPolicy sets the per-record error policy.
func WithErrorPolicy(policy ErrorPolicy) ScannerOption {
	return func(s *Scanner) { s.policy = policy }
}

// WithLogger sets the logger used for fail-open skip reports.
// If not called, slog.Default() is used.
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.logger = logger }
}

// WithTracerProvider enables tracing spans around scans.
func WithTracerProvider(tp trace.TracerProvider) ScannerOption {
	return func(s *Scanner) { s.tracer = observability.NewTracer(tp) }
}

// WithMeterProvider enables scan metrics.
func WithMeterProvider(mp metric.MeterProvider) ScannerOption {
	return func(s *Scanner) { s.metrics = observability.NewMetrics(mp) }
}

// NewScanner creates a Scanner for the given filter.
func NewScanner(filter *Filter, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		filter:  filter,
		policy:  FailClosed,
		logger:  slog.Default(),
		tracer:  observability.NewNoopTracer(),
		metrics: observability.NewNoopMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan reads records from src until io.EOF, calling yield for every
// record the filter includes. Under FailClosed the first per-record
// evaluation error aborts the scan; under FailOpen the record is
// excluded and the scan continues. Source errors and yield errors
// always abort.
func (s *Scanner) Scan(ctx context.Context, src Source, yield func(Record) error) error {
	ctx, span := s.tracer.StartScan(ctx, s.filter.Query(), s.policy.String())
	defer span.End()

	logger := observability.LoggerWithTrace(ctx, s.logger)
	start := time.Now()
	var records, matches int64

	err := func() error {
		for {
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading record: %w", err)
			}
			records++

			ok, err := s.filter.Match(rec)
			if err != nil {
				s.metrics.RecordEvalError(ctx, s.policy.String())
				if s.policy == FailClosed {
					return fmt.Errorf("record %d: %w", records, err)
				}
				logger.Warn("record excluded after evaluation error",
					slog.Int64("record", records),
					slog.String("query", s.filter.Query()),
					slog.Any("error", err),
				)
				continue
			}
			if !ok {
				continue
			}

			matches++
			if err := yield(rec); err != nil {
				return err
			}
		}
	}()

	span.SetAttributes(
		observability.RecordCountAttr(records),
		observability.MatchCountAttr(matches),
	)
	if err != nil {
		s.tracer.RecordError(span, err)
	}
	s.metrics.RecordScan(ctx, time.Since(start), records, matches, s.policy.String())

	return err
}
