// Package value defines the scalar value model shared by the filter
// parser and evaluator: a closed set of kinds with coercion and
// ordering rules for comparing values of differing kinds.
package value

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the scalar type carried by a Value. The declaration
// order doubles as the cross-kind rank used by Compare.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindDecimal
	KindString
	KindTimestamp
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindTimestamp:
		return "timestamp"
	}
	return "unknown"
}

// Value is an immutable tagged scalar. The zero Value is a false Bool.
type Value struct {
	kind Kind
	b    bool
	i    *big.Int
	f    float64
	d    decimal.Decimal
	s    string
	t    time.Time
}

// Bool creates a Bool value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int creates an Int value. The caller must not mutate i afterwards.
func Int(i *big.Int) Value {
	return Value{kind: KindInt, i: i}
}

// Int64 creates an Int value from a machine integer.
func Int64(i int64) Value {
	return Value{kind: KindInt, i: big.NewInt(i)}
}

// Float creates a Float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Decimal creates a Decimal value.
func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, d: d}
}

// String creates a String value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Timestamp creates a Timestamp value.
func Timestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, t: t}
}

// Kind returns the scalar kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the underlying bool. The second return is false when
// the value is not a Bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Text returns the underlying string. The second return is false when
// the value is not a String.
func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindString
}

// Format renders the value for diagnostics and output.
func (v Value) Format() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return v.i.String()
	case KindFloat:
		return formatFloat(v.f)
	case KindDecimal:
		return v.d.String()
	case KindString:
		return v.s
	case KindTimestamp:
		return v.t.Format(time.RFC3339Nano)
	}
	return ""
}
