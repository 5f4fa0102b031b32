package query

import (
	"fmt"
	"strings"
)

// Expr represents a node in the abstract syntax tree. Nodes are never
// mutated after construction.
type Expr interface {
	exprNode()
	String() string
}

// IntegerExpr represents an integer literal
type IntegerExpr struct {
	Value int64
}

func (e *IntegerExpr) exprNode() {}

func (e *IntegerExpr) String() string {
	return fmt.Sprintf("%d", e.Value)
}

// StringExpr represents a string value. The grammar has no string
// literal production, so the parser never emits this node; it exists
// for trees built programmatically.
type StringExpr struct {
	Value string
}

func (e *StringExpr) exprNode() {}

func (e *StringExpr) String() string {
	return fmt.Sprintf("%q", e.Value)
}

// VariableExpr represents a variable path (e.g. $1 or abc.def).
// Resolution against a record happens at evaluation time.
type VariableExpr struct {
	Path string
}

func (e *VariableExpr) exprNode() {}

func (e *VariableExpr) String() string {
	return e.Path
}

// PredicateExpr represents a bracketed sub-expression attached to a
// variable path (e.g. abc.def[$1 == 5]).
type PredicateExpr struct {
	Path string
	Pred Expr
}

func (e *PredicateExpr) exprNode() {}

func (e *PredicateExpr) String() string {
	return e.Path + "[" + e.Pred.String() + "]"
}

// ComparisonExpr represents a comparison (e.g. $1 == 5)
type ComparisonExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (e *ComparisonExpr) exprNode() {}

func (e *ComparisonExpr) String() string {
	return e.Left.String() + " " + e.Operator + " " + e.Right.String()
}

// BinaryExpr represents a logical conjunction or disjunction
// (e.g. a && b, a || b)
type BinaryExpr struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

func (e *BinaryExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Left.String())
	sb.WriteString(" ")
	sb.WriteString(e.Operator)
	sb.WriteString(" ")
	sb.WriteString(e.Right.String())
	sb.WriteString(")")
	return sb.String()
}
