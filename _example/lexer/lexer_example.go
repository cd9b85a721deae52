package main

import (
	"fmt"
	"log"

	"github.com/xiam/pie/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 'A 'B (67 3.27)))
			(fn_c 66 3 53 hello/world)
		)
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		if tok.IsWhitespace() {
			continue
		}
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
