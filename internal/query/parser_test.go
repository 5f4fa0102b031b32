package query

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Expr
	}{
		{
			name:  "AND binds tighter than OR",
			input: "a && b || c",
			expected: &BinaryExpr{
				Left: &BinaryExpr{
					Left:     &VariableExpr{Path: "a"},
					Operator: "&&",
					Right:    &VariableExpr{Path: "b"},
				},
				Operator: "||",
				Right:    &VariableExpr{Path: "c"},
			},
		},
		{
			name:  "OR then AND",
			input: "a || b && c",
			expected: &BinaryExpr{
				Left:     &VariableExpr{Path: "a"},
				Operator: "||",
				Right: &BinaryExpr{
					Left:     &VariableExpr{Path: "b"},
					Operator: "&&",
					Right:    &VariableExpr{Path: "c"},
				},
			},
		},
		{
			name:  "AND is left-associative",
			input: "a && b && c",
			expected: &BinaryExpr{
				Left: &BinaryExpr{
					Left:     &VariableExpr{Path: "a"},
					Operator: "&&",
					Right:    &VariableExpr{Path: "b"},
				},
				Operator: "&&",
				Right:    &VariableExpr{Path: "c"},
			},
		},
		{
			name:  "Parentheses override precedence",
			input: "a && (b || c)",
			expected: &BinaryExpr{
				Left:     &VariableExpr{Path: "a"},
				Operator: "&&",
				Right: &BinaryExpr{
					Left:     &VariableExpr{Path: "b"},
					Operator: "||",
					Right:    &VariableExpr{Path: "c"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(expr, tt.expected) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, expr, tt.expected)
			}
		})
	}
}

func TestParseCompoundQuery(t *testing.T) {
	expr, err := Parse("$1 == 5 && (b < 10 || c >= 20)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	expected := &BinaryExpr{
		Left: &ComparisonExpr{
			Left:     &VariableExpr{Path: "$1"},
			Operator: "==",
			Right:    &IntegerExpr{Value: 5},
		},
		Operator: "&&",
		Right: &BinaryExpr{
			Left: &ComparisonExpr{
				Left:     &VariableExpr{Path: "b"},
				Operator: "<",
				Right:    &IntegerExpr{Value: 10},
			},
			Operator: "||",
			Right: &ComparisonExpr{
				Left:     &VariableExpr{Path: "c"},
				Operator: ">=",
				Right:    &IntegerExpr{Value: 20},
			},
		},
	}

	if !reflect.DeepEqual(expr, expected) {
		t.Errorf("Parse() = %s, want %s", expr, expected)
	}
}

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Expr
	}{
		{name: "Integer", input: "42", expected: &IntegerExpr{Value: 42}},
		{name: "Positional variable", input: "$1", expected: &VariableExpr{Path: "$1"}},
		{name: "Named variable", input: "abc", expected: &VariableExpr{Path: "abc"}},
		{name: "Dotted path", input: "abc.def.ghi", expected: &VariableExpr{Path: "abc.def.ghi"}},
		{
			name:  "Variable with predicate",
			input: "abc.def[$1 == 5]",
			expected: &PredicateExpr{
				Path: "abc.def",
				Pred: &ComparisonExpr{
					Left:     &VariableExpr{Path: "$1"},
					Operator: "==",
					Right:    &IntegerExpr{Value: 5},
				},
			},
		},
		{name: "Parenthesized atom", input: "(5)", expected: &IntegerExpr{Value: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(expr, tt.expected) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, expr, tt.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty input", input: ""},
		{name: "Chained comparison", input: "a < b < c"},
		{name: "Trailing operator", input: "a =="},
		{name: "Unmatched paren", input: "(a == 5"},
		{name: "Unmatched bracket", input: "abc[a == 5"},
		{name: "Trailing input", input: "a == 5 b"},
		{name: "Lone operator", input: "&& b"},
		{name: "Integer overflow", input: "99999999999999999999999999"},
		{name: "Dot without identifier", input: "abc."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error type = %T, want *SyntaxError", err)
			}
		})
	}
}

func TestParseReportsUnconsumedSuffix(t *testing.T) {
	_, err := Parse("a == 5 < 3")
	if err == nil {
		t.Fatal("expected error for trailing comparison")
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error type = %T, want *SyntaxError", err)
	}
	if syntaxErr.Pos != 7 {
		t.Errorf("Pos = %d, want 7", syntaxErr.Pos)
	}
	if !strings.Contains(syntaxErr.Msg, "< 3") {
		t.Errorf("Msg = %q, want it to report the unconsumed suffix", syntaxErr.Msg)
	}
}

func TestParseDeterminism(t *testing.T) {
	input := "$1 == 5 && (b < 10 || c >= 20)"

	first, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same input twice produced different trees")
	}
}

func TestExprString(t *testing.T) {
	expr, err := Parse("$1 == 5 && b < 10")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := expr.String()
	if got != "($1 == 5 && b < 10)" {
		t.Errorf("String() = %q", got)
	}
}
