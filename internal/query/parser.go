package query

import (
	"fmt"
	"strconv"
)

// Parser parses a token stream into an AST
type Parser struct {
	input   string
	tokens  []*Token
	current int
}

// Parse parses a filter expression into an AST. The whole input must
// be consumed: a syntactically valid prefix followed by trailing
// garbage is an error reporting the unconsumed suffix.
func Parse(input string) (Expr, error) {
	tokens, err := NewTokenizer(input).TokenizeAll()
	if err != nil {
		return nil, err
	}

	p := &Parser{input: input, tokens: tokens}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if token := p.currentToken(); token.Type != TokenEOF {
		return nil, &SyntaxError{
			Pos: token.Pos,
			Msg: fmt.Sprintf("unexpected trailing input %q", input[token.Pos:]),
		}
	}

	return expr, nil
}

// currentToken returns the current token
func (p *Parser) currentToken() *Token {
	if p.current >= len(p.tokens) {
		return &Token{Type: TokenEOF, Pos: len(p.input)}
	}
	return p.tokens[p.current]
}

// advance moves to the next token
func (p *Parser) advance() *Token {
	token := p.currentToken()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return token
}

// expect checks that the current token matches the expected type and advances
func (p *Parser) expect(tokenType TokenType, what string) error {
	token := p.currentToken()
	if token.Type != tokenType {
		return &SyntaxError{
			Pos: token.Pos,
			Msg: fmt.Sprintf("expected %s, got %q", what, token.Value),
		}
	}
	p.advance()
	return nil
}

// parseOr handles "||" expressions (lowest precedence). Repeated
// operands fold left to right, so a || b || c parses as (a || b) || c.
func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.currentToken().Type == TokenLogical && p.currentToken().Value == "||" {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: op.Value,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd handles "&&" expressions
func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.currentToken().Type == TokenLogical && p.currentToken().Value == "&&" {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{
			Left:     left,
			Operator: op.Value,
			Right:    right,
		}
	}

	return left, nil
}

// parseComparison handles comparison expressions. At most one
// comparison operator is consumed per level: chains like a < b < c do
// not parse as a single comparison.
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.currentToken().Type == TokenComparison {
		op := p.advance()
		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return &ComparisonExpr{
			Left:     left,
			Operator: op.Value,
			Right:    right,
		}, nil
	}

	return left, nil
}

// parseAtom handles integers, variable paths with an optional
// predicate, and parenthesized sub-expressions
func (p *Parser) parseAtom() (Expr, error) {
	token := p.currentToken()

	switch token.Type {
	case TokenInteger:
		p.advance()
		v, err := strconv.ParseInt(token.Value, 10, 64)
		if err != nil {
			return nil, &SyntaxError{
				Pos: token.Pos,
				Msg: fmt.Sprintf("integer literal %q out of range", token.Value),
			}
		}
		return &IntegerExpr{Value: v}, nil

	case TokenIdentifier:
		return p.parseVariable()

	case TokenLParen:
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, &SyntaxError{
		Pos: token.Pos,
		Msg: fmt.Sprintf("expected integer, variable, or '(', got %q", token.Value),
	}
}

// parseVariable parses a dotted variable path with an optional
// bracketed predicate
func (p *Parser) parseVariable() (Expr, error) {
	path := p.advance().Value

	for p.currentToken().Type == TokenDot {
		p.advance()
		part := p.currentToken()
		if part.Type != TokenIdentifier {
			return nil, &SyntaxError{
				Pos: part.Pos,
				Msg: fmt.Sprintf("expected identifier after '.', got %q", part.Value),
			}
		}
		p.advance()
		path = path + "." + part.Value
	}

	if p.currentToken().Type == TokenLBracket {
		p.advance()
		pred, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRBracket, "']'"); err != nil {
			return nil, err
		}
		return &PredicateExpr{Path: path, Pred: pred}, nil
	}

	return &VariableExpr{Path: path}, nil
}
