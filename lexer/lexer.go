package lexer

import (
	"log/slog"
	"unicode/utf8"
)

const eof rune = -1

type lexState func(*Lexer) lexState

var (
	isOpenParen  = isTokenType(TokenOpenParen)
	isCloseParen = isTokenType(TokenCloseParen)
	isQuote      = isTokenType(TokenQuotedAtom)
	isWord       = isTokenType(TokenWord)
)

// New initializes a Lexer over the given source. A Lexer is meant to be used
// for a single pass and must not be shared between goroutines.
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in string

	tokens  []Token
	lastErr error

	start  int
	offset int

	line int
	col  int
}

// Tokens returns the tokens produced so far, in order of production.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Pos returns the line and column of the cursor. After Scan this is the
// position right after the last token.
func (lx *Lexer) Pos() (int, int) {
	return lx.line, lx.col
}

// Scan consumes the whole source.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.push(NewToken(tt, lx.in[lx.start:lx.offset], lx.line, lx.col))
}

func (lx *Lexer) emitWhitespace(ws Whitespace) {
	lx.push(NewWhitespace(ws, lx.in[lx.start:lx.offset], lx.line, lx.col))
}

func (lx *Lexer) push(tok Token) {
	lx.tokens = append(lx.tokens, tok)
	lx.start = lx.offset

	if tok.Whitespace() == Newline {
		lx.line++
		lx.col = 1
		return
	}
	lx.col += tok.width()
}

func (lx *Lexer) peek() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r
}

func (lx *Lexer) next() rune {
	if lx.offset >= len(lx.in) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += size
	return r
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.next()

	switch {
	case r == eof:
		return nil

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)

	case r == ' ':
		return lexEmitWhitespace(Space)
	case r == '\t':
		return lexEmitWhitespace(Tab)
	case r == '\n':
		return lexEmitWhitespace(Newline)
	case r == '\r':
		return lexCarriageReturn

	case isDigit(r):
		return lexCollectStream(TokenNumber)
	case isQuote(r):
		return lexQuotedAtom
	case isWord(r):
		return lexCollectStream(TokenWord)

	default:
		return lexStateError(r)
	}
}

// lexCarriageReturn folds "\r\n" into a single newline.
func lexCarriageReturn(lx *Lexer) lexState {
	if lx.peek() == '\n' {
		lx.next()
	}
	lx.emitWhitespace(Newline)
	return lexDefaultState
}

// lexQuotedAtom runs after the quote was consumed. An empty name is valid.
func lexQuotedAtom(lx *Lexer) lexState {
	for isWord(lx.peek()) {
		lx.next()
	}
	lx.push(NewToken(TokenQuotedAtom, lx.in[lx.start+1:lx.offset], lx.line, lx.col))
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexEmitWhitespace(ws Whitespace) lexState {
	return func(lx *Lexer) lexState {
		lx.emitWhitespace(ws)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	accept := isTokenType(tt)
	return func(lx *Lexer) lexState {
		for accept(lx.peek()) {
			lx.next()
		}
		return lexEmit(tt)
	}
}

func lexStateError(r rune) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = &Error{
			Line: lx.line,
			Col:  lx.col,
			Rune: r,
			Err:  ErrUnrecognizedCharacter,
		}
		slog.Debug("lexer error", "err", lx.lastErr)
		return nil
	}
}

// Tokenize takes a source string and returns all the tokens within it, or an
// error if a character can't start any token.
func Tokenize(in string) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}
