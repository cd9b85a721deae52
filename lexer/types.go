package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenWord                 // Identifier characters: [a-zA-Z0-9_/-]
	TokenQuotedAtom           // Quote followed by identifier characters: 'foo
	TokenNumber               // Digits and dots: 1, 1.23
	TokenWhitespace           // Space, tab or newline
)

// Whitespace represents the kind of a whitespace token
type Whitespace uint8

// Kinds of whitespace
const (
	NotWhitespace Whitespace = iota
	Space
	Tab
	Newline
)

// TabWidth is the number of columns a tab advances the cursor.
const TabWidth = 4

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:  {'('},
	TokenCloseParen: {')'},
	TokenQuotedAtom: {'\''},
	TokenWord:       []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-/"),
	TokenNumber:     []rune("0123456789."),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenWord:       "word",
	TokenQuotedAtom: "quoted_atom",
	TokenNumber:     "number",
	TokenWhitespace: "whitespace",
}

var whitespaceNames = map[Whitespace]string{
	NotWhitespace: "none",
	Space:         "space",
	Tab:           "tab",
	Newline:       "newline",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func (ws Whitespace) String() string {
	if v, ok := whitespaceNames[ws]; ok {
		return v
	}
	return whitespaceNames[NotWhitespace]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
