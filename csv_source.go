package hawk

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVOption configures a CSVSource.
type CSVOption func(*CSVSource)

// WithSeparator sets the field separator (default ',').
func WithSeparator(sep rune) CSVOption {
	return func(s *CSVSource) { s.reader.Comma = sep }
}

// WithHeader treats the first row as field names. Named fields are
// available through Record.Lookup; positional $N references are
// unaffected.
func WithHeader() CSVOption {
	return func(s *CSVSource) { s.hasHeader = true }
}

// CSVSource decodes CSV rows into records. Each field is a String
// value; the evaluator's coercion rules take care of numeric,
// boolean, and timestamp comparisons.
type CSVSource struct {
	reader    *csv.Reader
	hasHeader bool
	header    []string
	started   bool
}

// NewCSVSource creates a record source reading CSV from r.
func NewCSVSource(r io.Reader, opts ...CSVOption) *CSVSource {
	reader := csv.NewReader(r)
	// Rows in one stream may have differing widths; each record's
	// field count stands on its own.
	reader.FieldsPerRecord = -1

	s := &CSVSource{reader: reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Header returns the field names read from the first row, or nil when
// the source has no header row or has not read it yet.
func (s *CSVSource) Header() []string {
	return s.header
}

// Next returns the next record, or io.EOF after the last row.
func (s *CSVSource) Next() (Record, error) {
	if s.hasHeader && !s.started {
		s.started = true
		row, err := s.reader.Read()
		if err == io.EOF {
			return Record{}, io.EOF
		}
		if err != nil {
			return Record{}, fmt.Errorf("reading csv header: %w", err)
		}
		s.header = row
	}
	s.started = true

	row, err := s.reader.Read()
	if err == io.EOF {
		return Record{}, io.EOF
	}
	if err != nil {
		return Record{}, fmt.Errorf("reading csv row: %w", err)
	}

	return RecordFromStrings(row, s.header), nil
}
