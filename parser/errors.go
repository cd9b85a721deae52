package parser

import (
	"errors"
	"fmt"
)

var (
	ErrNoExpression         = errors.New("expected expression")
	ErrUnmatchedCloseParen  = errors.New("unmatched close paren")
	ErrUnclosedParen        = errors.New("unclosed paren")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
	ErrUnexpectedToken      = errors.New("unexpected token")
)

// Error reports a parse error together with the offending token. Line is
// zero when the error happened at the end of the input.
type Error struct {
	Line int
	Col  int
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parser: %v at end of input", e.Err)
	}
	return fmt.Sprintf("parser: %v %q at %d:%d", e.Err, e.Text, e.Line, e.Col)
}

func (e *Error) Unwrap() error {
	return e.Err
}
