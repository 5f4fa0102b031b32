// Package eval walks a parsed filter expression against a single
// record, resolving variables and applying the value model's coercion
// and ordering rules.
package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hawkql/hawk/internal/query"
	"github.com/hawkql/hawk/internal/record"
	"github.com/hawkql/hawk/internal/value"
)

var (
	// ErrFieldOutOfRange is reported when a positional reference
	// exceeds the record's field count.
	ErrFieldOutOfRange = errors.New("field position out of range")

	// ErrUnresolvedVariable is reported for variable paths the
	// evaluator cannot resolve. Only positional $N references are
	// resolvable; the grammar accepts more than the evaluator supports.
	ErrUnresolvedVariable = errors.New("unresolved variable")

	// ErrPredicateUnsupported is reported for bracketed predicate
	// expressions, whose semantics are not defined.
	ErrPredicateUnsupported = errors.New("predicate expressions are not supported")
)

// Eval evaluates an expression against a record. It is pure: the same
// (record, expression) pair always yields the same result, and the
// record is only read.
func Eval(rec record.Record, e query.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *query.IntegerExpr:
		return value.Int64(n.Value), nil

	case *query.StringExpr:
		return value.String(n.Value), nil

	case *query.VariableExpr:
		return resolveVariable(rec, n.Path)

	case *query.PredicateExpr:
		return value.Value{}, fmt.Errorf("%w: %s[%s]", ErrPredicateUnsupported, n.Path, n.Pred)

	case *query.ComparisonExpr:
		return evalComparison(rec, n)

	case *query.BinaryExpr:
		return evalLogical(rec, n)
	}

	return value.Value{}, fmt.Errorf("%w: unsupported expression node %T", value.ErrTypeMismatch, e)
}

// EvalBool evaluates an expression expected to produce the filter
// decision for a record.
func EvalBool(rec record.Record, e query.Expr) (bool, error) {
	v, err := Eval(rec, e)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, fmt.Errorf("%w: filter produced %s, want bool", value.ErrTypeMismatch, v.Kind())
	}
	return b, nil
}

// resolveVariable resolves a variable path against the record. Only
// $N positional references resolve; N is 1-based and must be within
// the record's field count.
func resolveVariable(rec record.Record, path string) (value.Value, error) {
	rest, ok := strings.CutPrefix(path, "$")
	if !ok || rest == "" || !allDigits(rest) {
		return value.Value{}, fmt.Errorf("%w: %q", ErrUnresolvedVariable, path)
	}

	n, err := strconv.Atoi(rest)
	if err != nil {
		// Only possible on overflow; no record is that wide.
		return value.Value{}, fmt.Errorf("%w: %s of %d fields", ErrFieldOutOfRange, path, rec.Len())
	}

	v, ok := rec.Field(n)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s of %d fields", ErrFieldOutOfRange, path, rec.Len())
	}
	return v, nil
}

func allDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// evalComparison evaluates both sides and applies the operator.
// Equality uses the bidirectional coercion rules; ordering uses the
// coercion-free total order over all kinds.
func evalComparison(rec record.Record, n *query.ComparisonExpr) (value.Value, error) {
	left, err := Eval(rec, n.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := Eval(rec, n.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Operator {
	case "==":
		eq, err := value.Equal(left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(eq), nil
	case "!=":
		eq, err := value.Equal(left, right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(!eq), nil
	case "<":
		return value.Bool(value.Compare(left, right) < 0), nil
	case "<=":
		return value.Bool(value.Compare(left, right) <= 0), nil
	case ">":
		return value.Bool(value.Compare(left, right) > 0), nil
	case ">=":
		return value.Bool(value.Compare(left, right) >= 0), nil
	}

	return value.Value{}, fmt.Errorf("%w: unknown comparison operator %q", value.ErrTypeMismatch, n.Operator)
}

// evalLogical evaluates both operands of && and ||. Evaluation is
// side-effect free, so there is no short-circuiting; both operands
// must produce Bool.
func evalLogical(rec record.Record, n *query.BinaryExpr) (value.Value, error) {
	left, err := Eval(rec, n.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := Eval(rec, n.Right)
	if err != nil {
		return value.Value{}, err
	}

	lb, lok := left.Bool()
	rb, rok := right.Bool()
	if !lok || !rok {
		return value.Value{}, fmt.Errorf("%w: %q requires bool operands, got %s and %s",
			value.ErrTypeMismatch, n.Operator, left.Kind(), right.Kind())
	}

	switch n.Operator {
	case "&&":
		return value.Bool(lb && rb), nil
	case "||":
		return value.Bool(lb || rb), nil
	}

	return value.Value{}, fmt.Errorf("%w: unknown logical operator %q", value.ErrTypeMismatch, n.Operator)
}
