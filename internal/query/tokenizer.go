// Package query parses filter expressions into an abstract syntax
// tree. The grammar, lowest to highest precedence:
//
//	expr        := or_expr
//	or_expr     := and_expr ( "||" and_expr )*
//	and_expr    := comparison ( "&&" comparison )*
//	comparison  := atom ( cmp_op atom )?
//	cmp_op      := "==" | "!=" | "<=" | ">=" | "<" | ">"
//	atom        := integer | variable predicate? | "(" expr ")"
//	predicate   := "[" expr "]"
//	variable    := identifier ( "." identifier )*
//	identifier  := (alpha | "_" | "$") (alnum | "_" | "-")*
//	integer     := digit+
//
// Parsed trees are immutable and safe to share across goroutines.
package query

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenInteger
	TokenComparison
	TokenLogical
	TokenDot
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
)

// Token represents a single token in the filter expression
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Tokenizer tokenizes filter expressions
type Tokenizer struct {
	input string
	pos   int
	ch    rune
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{
		input: input,
		pos:   0,
	}
	if len(input) > 0 {
		t.ch = rune(input[0])
	}
	return t
}

// advance moves to the next character
func (t *Tokenizer) advance() {
	t.pos++
	if t.pos >= len(t.input) {
		t.ch = 0 // EOF
	} else {
		t.ch = rune(t.input[t.pos])
	}
}

// peek looks ahead without advancing
func (t *Tokenizer) peek() rune {
	if t.pos+1 >= len(t.input) {
		return 0
	}
	return rune(t.input[t.pos+1])
}

// skipWhitespace skips whitespace characters
func (t *Tokenizer) skipWhitespace() {
	for t.ch == ' ' || t.ch == '\t' || t.ch == '\n' || t.ch == '\r' {
		t.advance()
	}
}

// readInteger reads a run of decimal digits
func (t *Tokenizer) readInteger() string {
	var result strings.Builder

	for unicode.IsDigit(t.ch) {
		result.WriteRune(t.ch)
		t.advance()
	}

	return result.String()
}

// isIdentStart reports whether ch can begin an identifier
func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

// isIdentPart reports whether ch can continue an identifier
func isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '-'
}

// readIdentifier reads an identifier. The leading character may be a
// letter, underscore, or '$'; subsequent characters may also be digits
// or hyphens.
func (t *Tokenizer) readIdentifier() string {
	var result strings.Builder

	result.WriteRune(t.ch)
	t.advance()
	for t.ch != 0 && isIdentPart(t.ch) {
		result.WriteRune(t.ch)
		t.advance()
	}

	return result.String()
}

// NextToken returns the next token
func (t *Tokenizer) NextToken() (*Token, error) {
	t.skipWhitespace()

	if t.ch == 0 {
		return &Token{Type: TokenEOF, Pos: t.pos}, nil
	}

	pos := t.pos

	if unicode.IsDigit(t.ch) {
		return &Token{Type: TokenInteger, Value: t.readInteger(), Pos: pos}, nil
	}

	if isIdentStart(t.ch) {
		return &Token{Type: TokenIdentifier, Value: t.readIdentifier(), Pos: pos}, nil
	}

	if token := t.tokenizeSpecialChar(pos); token != nil {
		return token, nil
	}

	token, err := t.tokenizeOperator(pos)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// tokenizeSpecialChar tokenizes single-character punctuation
func (t *Tokenizer) tokenizeSpecialChar(pos int) *Token {
	switch t.ch {
	case '(':
		t.advance()
		return &Token{Type: TokenLParen, Value: "(", Pos: pos}
	case ')':
		t.advance()
		return &Token{Type: TokenRParen, Value: ")", Pos: pos}
	case '[':
		t.advance()
		return &Token{Type: TokenLBracket, Value: "[", Pos: pos}
	case ']':
		t.advance()
		return &Token{Type: TokenRBracket, Value: "]", Pos: pos}
	case '.':
		t.advance()
		return &Token{Type: TokenDot, Value: ".", Pos: pos}
	}
	return nil
}

// tokenizeOperator tokenizes comparison and logical operators
func (t *Tokenizer) tokenizeOperator(pos int) (*Token, error) {
	switch t.ch {
	case '=':
		if t.peek() == '=' {
			t.advance()
			t.advance()
			return &Token{Type: TokenComparison, Value: "==", Pos: pos}, nil
		}
		return nil, &SyntaxError{Pos: pos, Msg: "unexpected character '=', did you mean '=='?"}
	case '!':
		if t.peek() == '=' {
			t.advance()
			t.advance()
			return &Token{Type: TokenComparison, Value: "!=", Pos: pos}, nil
		}
		return nil, &SyntaxError{Pos: pos, Msg: "unexpected character '!', did you mean '!='?"}
	case '<':
		t.advance()
		if t.ch == '=' {
			t.advance()
			return &Token{Type: TokenComparison, Value: "<=", Pos: pos}, nil
		}
		return &Token{Type: TokenComparison, Value: "<", Pos: pos}, nil
	case '>':
		t.advance()
		if t.ch == '=' {
			t.advance()
			return &Token{Type: TokenComparison, Value: ">=", Pos: pos}, nil
		}
		return &Token{Type: TokenComparison, Value: ">", Pos: pos}, nil
	case '&':
		if t.peek() == '&' {
			t.advance()
			t.advance()
			return &Token{Type: TokenLogical, Value: "&&", Pos: pos}, nil
		}
		return nil, &SyntaxError{Pos: pos, Msg: "unexpected character '&', did you mean '&&'?"}
	case '|':
		if t.peek() == '|' {
			t.advance()
			t.advance()
			return &Token{Type: TokenLogical, Value: "||", Pos: pos}, nil
		}
		return nil, &SyntaxError{Pos: pos, Msg: "unexpected character '|', did you mean '||'?"}
	}

	return nil, &SyntaxError{Pos: pos, Msg: "unexpected character " + strconv.QuoteRune(t.ch)}
}

// TokenizeAll returns all tokens from the input
func (t *Tokenizer) TokenizeAll() ([]*Token, error) {
	var tokens []*Token

	for {
		token, err := t.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}
