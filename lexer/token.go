package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	ws     Whitespace
	lexeme string

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewWhitespace creates a whitespace lexical unit of the given kind
func NewWhitespace(ws Whitespace, lexeme string, line int, col int) Token {
	tok := NewToken(TokenWhitespace, lexeme, line, col)
	tok.ws = ws
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Whitespace returns the kind of whitespace, or NotWhitespace.
func (t Token) Whitespace() Whitespace {
	return t.ws
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the text of the lexical unit. For quoted atoms this is the
// name without the leading quote.
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsWhitespace returns true for space, tab and newline tokens
func (t Token) IsWhitespace() bool {
	return t.tt == TokenWhitespace
}

// width is the number of columns the cursor advances past this token.
func (t Token) width() int {
	switch t.tt {
	case TokenQuotedAtom:
		return len(t.lexeme) + 1
	case TokenWhitespace:
		if t.ws == Tab {
			return TabWidth
		}
		return 1
	}
	return len(t.lexeme)
}

func (t Token) String() string {
	if t.tt == TokenWhitespace {
		return fmt.Sprintf("(:%v %v [%d %d])", t.tt, t.ws, t.line, t.col)
	}
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
