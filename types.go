package hawk

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hawkql/hawk/internal/record"
	"github.com/hawkql/hawk/internal/value"
)

// Record is one input row: an ordered, fixed sequence of fields.
type Record = record.Record

// Field is a single record field with an optional name.
type Field = record.Field

// Value is a typed scalar used both for literals and field content.
type Value = value.Value

// Kind identifies the scalar type of a Value.
type Kind = value.Kind

// Scalar kinds, in cross-kind ordering rank.
const (
	KindBool      = value.KindBool
	KindInt       = value.KindInt
	KindFloat     = value.KindFloat
	KindDecimal   = value.KindDecimal
	KindString    = value.KindString
	KindTimestamp = value.KindTimestamp
)

// NewRecord creates a record from the given fields.
func NewRecord(fields ...Field) Record {
	return record.New(fields...)
}

// RecordFromStrings creates a record of String-kind fields from raw
// texts, with optional positional names.
func RecordFromStrings(texts []string, names []string) Record {
	return record.FromStrings(texts, names)
}

// BoolValue creates a Bool value.
func BoolValue(b bool) Value { return value.Bool(b) }

// IntValue creates an arbitrary-precision Int value.
func IntValue(i *big.Int) Value { return value.Int(i) }

// Int64Value creates an Int value from a machine integer.
func Int64Value(i int64) Value { return value.Int64(i) }

// FloatValue creates a Float value.
func FloatValue(f float64) Value { return value.Float(f) }

// DecimalValue creates a Decimal value.
func DecimalValue(d decimal.Decimal) Value { return value.Decimal(d) }

// StringValue creates a String value.
func StringValue(s string) Value { return value.String(s) }

// TimestampValue creates a Timestamp value.
func TimestampValue(t time.Time) Value { return value.Timestamp(t) }
