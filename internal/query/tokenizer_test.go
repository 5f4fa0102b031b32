package query

import (
	"errors"
	"testing"
)

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:  "Simple comparison",
			input: "$1 == 5",
			expected: []TokenType{
				TokenIdentifier,
				TokenComparison,
				TokenInteger,
				TokenEOF,
			},
		},
		{
			name:  "With parentheses",
			input: "($1 < 10)",
			expected: []TokenType{
				TokenLParen,
				TokenIdentifier,
				TokenComparison,
				TokenInteger,
				TokenRParen,
				TokenEOF,
			},
		},
		{
			name:  "Logical AND",
			input: "$1 == 5 && $2 != 3",
			expected: []TokenType{
				TokenIdentifier,
				TokenComparison,
				TokenInteger,
				TokenLogical,
				TokenIdentifier,
				TokenComparison,
				TokenInteger,
				TokenEOF,
			},
		},
		{
			name:  "Logical OR",
			input: "a || b",
			expected: []TokenType{
				TokenIdentifier,
				TokenLogical,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			name:  "Dotted path",
			input: "abc.def",
			expected: []TokenType{
				TokenIdentifier,
				TokenDot,
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			name:  "Predicate brackets",
			input: "abc[$1 == 5]",
			expected: []TokenType{
				TokenIdentifier,
				TokenLBracket,
				TokenIdentifier,
				TokenComparison,
				TokenInteger,
				TokenRBracket,
				TokenEOF,
			},
		},
		{
			name:  "All comparison operators",
			input: "== != <= >= < >",
			expected: []TokenType{
				TokenComparison,
				TokenComparison,
				TokenComparison,
				TokenComparison,
				TokenComparison,
				TokenComparison,
				TokenEOF,
			},
		},
		{
			name:  "Identifier with underscore and hyphen",
			input: "_foo-bar",
			expected: []TokenType{
				TokenIdentifier,
				TokenEOF,
			},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []TokenType{TokenEOF},
		},
		{
			name:     "Whitespace only",
			input:    "  \t\n  ",
			expected: []TokenType{TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenizer := NewTokenizer(tt.input)
			tokens, err := tokenizer.TokenizeAll()
			if err != nil {
				t.Fatalf("TokenizeAll() error = %v", err)
			}

			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.expected))
			}

			for i, token := range tokens {
				if token.Type != tt.expected[i] {
					t.Errorf("token %d: got type %v, want %v", i, token.Type, tt.expected[i])
				}
			}
		})
	}
}

func TestTokenizerValues(t *testing.T) {
	tokenizer := NewTokenizer("$1 >= 20 && name-x != 5")
	tokens, err := tokenizer.TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll() error = %v", err)
	}

	expected := []string{"$1", ">=", "20", "&&", "name-x", "!=", "5", ""}
	for i, want := range expected {
		if tokens[i].Value != want {
			t.Errorf("token %d: got value %q, want %q", i, tokens[i].Value, want)
		}
	}
}

func TestTokenizerPositions(t *testing.T) {
	tokenizer := NewTokenizer("$1 == 42")
	tokens, err := tokenizer.TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll() error = %v", err)
	}

	positions := []int{0, 3, 6}
	for i, want := range positions {
		if tokens[i].Pos != want {
			t.Errorf("token %d: got pos %d, want %d", i, tokens[i].Pos, want)
		}
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Single ampersand", input: "a & b"},
		{name: "Single pipe", input: "a | b"},
		{name: "Single equals", input: "a = b"},
		{name: "Bare exclamation", input: "a ! b"},
		{name: "Unknown character", input: "a # b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer(tt.input).TokenizeAll()
			if err == nil {
				t.Fatalf("TokenizeAll(%q) expected error, got nil", tt.input)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error type = %T, want *SyntaxError", err)
			}
		})
	}
}
