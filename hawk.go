// Package hawk implements a small predicate query language for
// filtering structured records. A query such as
//
//	$1 == 5 && (b < 10 || c >= 20)
//
// is compiled once into an immutable expression tree and then matched
// against any number of records, each an ordered sequence of fields
// addressable by 1-based position ($1, $2, ...).
package hawk

import (
	"fmt"

	"github.com/hawkql/hawk/internal/eval"
	"github.com/hawkql/hawk/internal/query"
)

// Filter is a compiled query. A Filter is immutable and safe for
// concurrent use: a single Filter may be matched against independent
// records from many goroutines at once.
type Filter struct {
	src  string
	expr query.Expr
}

// Compile parses a query into a reusable Filter. Compiled filters are
// held in a bounded process-wide cache keyed by the query text, so
// repeated compilation of the same query is cheap.
func Compile(queryText string) (*Filter, error) {
	if f, ok := globalFilterCache.get(queryText); ok {
		return f, nil
	}

	expr, err := query.Parse(queryText)
	if err != nil {
		return nil, fmt.Errorf("compiling filter: %w", err)
	}

	f := &Filter{src: queryText, expr: expr}
	globalFilterCache.put(queryText, f)
	return f, nil
}

// MustCompile is like Compile but panics on a malformed query. It
// simplifies safe initialization of package-level filters.
func MustCompile(queryText string) *Filter {
	f, err := Compile(queryText)
	if err != nil {
		panic(err)
	}
	return f
}

// Match evaluates the filter against one record and reports whether
// the record passes. The record is only read and never retained.
func (f *Filter) Match(rec Record) (bool, error) {
	return eval.EvalBool(rec, f.expr)
}

// Eval evaluates the filter against one record and returns the raw
// result value. Most callers want Match; Eval is useful when the
// query's root is not a boolean expression.
func (f *Filter) Eval(rec Record) (Value, error) {
	return eval.Eval(rec, f.expr)
}

// Query returns the original query text.
func (f *Filter) Query() string {
	return f.src
}

// Expr returns a normalized rendering of the parsed expression tree,
// useful for diagnostics.
func (f *Filter) Expr() string {
	return f.expr.String()
}
