package query

import "fmt"

// SyntaxError describes a malformed filter expression. Pos is the
// byte offset into the original input where parsing failed.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}
