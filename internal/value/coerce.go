package value

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// ErrTypeMismatch is reported when two values cannot take part in the
// same operation: equality across a non-coercible kind pair, or a
// logical operator applied to a non-Bool operand.
var ErrTypeMismatch = errors.New("type mismatch")

// CoercionError is reported when a value's text cannot be parsed as
// the target kind.
type CoercionError struct {
	From Kind
	To   Kind
	Text string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s %q to %s", e.From, e.Text, e.To)
}

// coercible reports whether a one-directional coercion rule exists
// from one kind to another. Identity is not a coercion.
func coercible(from, to Kind) bool {
	switch from {
	case KindString:
		return to == KindBool || to == KindInt || to == KindFloat ||
			to == KindDecimal || to == KindTimestamp
	case KindInt:
		return to == KindFloat || to == KindDecimal
	}
	return false
}

// Coerce converts v to the target kind using the one-directional
// coercion table. Values already of the target kind pass through.
func Coerce(v Value, to Kind) (Value, error) {
	if v.kind == to {
		return v, nil
	}

	switch {
	case v.kind == KindString && to == KindBool:
		switch v.s {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return Value{}, &CoercionError{From: KindString, To: KindBool, Text: v.s}

	case v.kind == KindString && to == KindInt:
		i, ok := new(big.Int).SetString(v.s, 10)
		if !ok {
			return Value{}, &CoercionError{From: KindString, To: KindInt, Text: v.s}
		}
		return Int(i), nil

	case v.kind == KindString && to == KindFloat:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return Value{}, &CoercionError{From: KindString, To: KindFloat, Text: v.s}
		}
		return Float(f), nil

	case v.kind == KindString && to == KindDecimal:
		d, err := decimal.NewFromString(v.s)
		if err != nil {
			return Value{}, &CoercionError{From: KindString, To: KindDecimal, Text: v.s}
		}
		return Decimal(d), nil

	case v.kind == KindString && to == KindTimestamp:
		t, err := dateparse.ParseAny(v.s)
		if err != nil {
			return Value{}, &CoercionError{From: KindString, To: KindTimestamp, Text: v.s}
		}
		return Timestamp(t), nil

	case v.kind == KindInt && to == KindFloat:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return Float(f), nil

	case v.kind == KindInt && to == KindDecimal:
		return Decimal(decimal.NewFromBigInt(v.i, 0)), nil
	}

	return Value{}, fmt.Errorf("%w: no coercion from %s to %s", ErrTypeMismatch, v.kind, to)
}

// Equal compares two values for equality. Values of the same kind are
// compared directly. Values of differing kinds are coerced toward each
// other's kind first; when neither direction has a coercion rule the
// comparison fails rather than silently returning false.
func Equal(a, b Value) (bool, error) {
	if a.kind == b.kind {
		return sameKindCompare(a, b) == 0, nil
	}

	aOK := coercible(a.kind, b.kind)
	bOK := coercible(b.kind, a.kind)
	if !aOK && !bOK {
		return false, fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, a.kind, b.kind)
	}

	if aOK {
		ca, err := Coerce(a, b.kind)
		if err != nil {
			return false, err
		}
		a = ca
	}
	if bOK {
		cb, err := Coerce(b, a.kind)
		if err != nil {
			return false, err
		}
		b = cb
	}

	if a.kind != b.kind {
		// Both directions had rules but converged on different kinds.
		return false, fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, a.kind, b.kind)
	}
	return sameKindCompare(a, b) == 0, nil
}
