package parser

import (
	"log/slog"
	"strconv"

	"github.com/xiam/pie/ast"
	"github.com/xiam/pie/lexer"
)

// Parser builds terms out of a token sequence. Whitespace tokens are skipped
// by the cursor and never reach the grammar.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser over the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses every top-level expression left in the token sequence.
func (p *Parser) Parse() ([]ast.Term, error) {
	terms := []ast.Term{}
	for {
		if _, ok := p.peek(); !ok {
			return terms, nil
		}
		term, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
}

// ParseExpression parses a single parenthesized group.
func (p *Parser) ParseExpression() (ast.Term, error) {
	tok, ok := p.advance()
	if !ok {
		return nil, parserError(ErrNoExpression, nil)
	}

	switch tok.Type() {
	case lexer.TokenOpenParen:
		return p.buildGroup(tok)
	case lexer.TokenCloseParen:
		return nil, parserError(ErrUnmatchedCloseParen, &tok)
	}
	return nil, parserError(ErrUnexpectedToken, &tok)
}

// buildGroup collects the elements of a group whose open paren was already
// consumed, and folds them with ast.Group.
func (p *Parser) buildGroup(open lexer.Token) (ast.Term, error) {
	elems := []ast.Term{}

	for {
		tok, ok := p.advance()
		if !ok {
			return nil, parserError(ErrUnclosedParen, &open)
		}

		switch tok.Type() {
		case lexer.TokenWord, lexer.TokenQuotedAtom:
			elems = append(elems, ast.Atom{Name: tok.Text()})

		case lexer.TokenNumber:
			term, err := expectNumber(tok)
			if err != nil {
				return nil, err
			}
			elems = append(elems, term)

		case lexer.TokenOpenParen:
			term, err := p.buildGroup(tok)
			if err != nil {
				return nil, err
			}
			elems = append(elems, term)

		case lexer.TokenCloseParen:
			return ast.Group(elems), nil

		default:
			return nil, parserError(ErrUnexpectedToken, &tok)
		}
	}
}

// expectNumber validates a number literal as an integer, or else as a
// floating point number. The atom keeps the literal text.
func expectNumber(tok lexer.Token) (ast.Term, error) {
	if _, err := strconv.ParseInt(tok.Text(), 10, 64); err == nil {
		return ast.Atom{Name: tok.Text()}, nil
	}
	if _, err := strconv.ParseFloat(tok.Text(), 64); err == nil {
		return ast.Atom{Name: tok.Text()}, nil
	}
	return nil, parserError(ErrInvalidNumberLiteral, &tok)
}

// peek returns the next non-whitespace token without consuming it.
func (p *Parser) peek() (lexer.Token, bool) {
	return p.peekNth(0)
}

// peekNth returns the n-th (zero-based) upcoming non-whitespace token
// without consuming anything.
func (p *Parser) peekNth(n int) (lexer.Token, bool) {
	for i := p.pos; i < len(p.tokens); i++ {
		if p.tokens[i].IsWhitespace() {
			continue
		}
		if n == 0 {
			return p.tokens[i], true
		}
		n--
	}
	return lexer.Token{}, false
}

// advance consumes and returns the next non-whitespace token.
func (p *Parser) advance() (lexer.Token, bool) {
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++
		if !tok.IsWhitespace() {
			return tok, true
		}
	}
	return lexer.Token{}, false
}

func parserError(err error, tok *lexer.Token) error {
	e := &Error{Err: err}
	if tok != nil {
		e.Line, e.Col = tok.Pos()
		e.Text = tok.Text()
	}
	slog.Debug("parser error", "err", e)
	return e
}

// Parse takes a source string and returns one term per top-level group.
func Parse(in string) ([]ast.Term, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// ParseBytes is like Parse but takes an array of bytes.
func ParseBytes(in []byte) ([]ast.Term, error) {
	return Parse(string(in))
}
