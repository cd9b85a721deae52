package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenAccessors(t *testing.T) {
	tok := NewToken(TokenWord, "foo", 3, 7)

	assert.Equal(t, TokenWord, tok.Type())
	assert.Equal(t, "foo", tok.Text())
	assert.True(t, tok.Is(TokenWord))
	assert.False(t, tok.IsWhitespace())
	assert.Equal(t, NotWhitespace, tok.Whitespace())

	line, col := tok.Pos()
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)

	assert.Equal(t, `(:word "foo" [3 7])`, tok.String())
	assert.Equal(t, `(:whitespace tab [1 2])`, NewWhitespace(Tab, "\t", 1, 2).String())
}

func TestTokenWidth(t *testing.T) {
	assert.Equal(t, 3, NewToken(TokenWord, "foo", 1, 1).width())
	assert.Equal(t, 4, NewToken(TokenQuotedAtom, "foo", 1, 1).width())
	assert.Equal(t, 1, NewToken(TokenQuotedAtom, "", 1, 1).width())
	assert.Equal(t, 4, NewToken(TokenNumber, "1.23", 1, 1).width())
	assert.Equal(t, TabWidth, NewWhitespace(Tab, "\t", 1, 1).width())
	assert.Equal(t, 1, NewWhitespace(Space, " ", 1, 1).width())
	assert.Equal(t, 1, NewToken(TokenOpenParen, "(", 1, 1).width())
}

func TestTokenTypeNames(t *testing.T) {
	assert.Equal(t, "open_paren", TokenOpenParen.String())
	assert.Equal(t, "quoted_atom", TokenQuotedAtom.String())
	assert.Equal(t, "invalid", TokenType(99).String())
	assert.Equal(t, "newline", Newline.String())
	assert.Equal(t, "none", Whitespace(42).String())
}
