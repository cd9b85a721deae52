package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// Error reports a lexical error at a given position.
type Error struct {
	Line int
	Col  int
	Rune rune
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: %v %q at %d:%d", e.Err, e.Rune, e.Line, e.Col)
}

func (e *Error) Unwrap() error {
	return e.Err
}
