package hawk

import (
	"github.com/hawkql/hawk/internal/eval"
	"github.com/hawkql/hawk/internal/query"
	"github.com/hawkql/hawk/internal/value"
)

// SyntaxError reports a malformed query with the position where
// parsing failed. Returned (wrapped) by Compile; use errors.As.
type SyntaxError = query.SyntaxError

// CoercionError reports a field or literal whose text could not be
// parsed as the kind required by a comparison. Use errors.As.
type CoercionError = value.CoercionError

// Sentinel errors returned (wrapped) from Filter.Match and
// Filter.Eval; use errors.Is.
var (
	// ErrFieldOutOfRange: a $N reference exceeded the record width.
	ErrFieldOutOfRange = eval.ErrFieldOutOfRange

	// ErrUnresolvedVariable: the variable path is not a positional
	// $N reference. The grammar accepts named and dotted paths, but
	// the evaluator does not resolve them.
	ErrUnresolvedVariable = eval.ErrUnresolvedVariable

	// ErrPredicateUnsupported: the query used the path[expr] form,
	// which parses but has no evaluation semantics.
	ErrPredicateUnsupported = eval.ErrPredicateUnsupported

	// ErrTypeMismatch: a logical operator was applied to a non-Bool
	// operand, or two values of non-coercible kinds were compared
	// for equality.
	ErrTypeMismatch = value.ErrTypeMismatch
)
