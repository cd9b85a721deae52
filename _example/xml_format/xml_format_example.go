package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/pie/ast"
	"github.com/xiam/pie/parser"
)

func printTree(term ast.Term) {
	printIndentedTree(term, 0)
}

func printIndentedTree(term ast.Term, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if p, ok := term.(ast.PairTerm); ok {
		fmt.Printf("%s<%s>\n", indent, term.Kind())
		printIndentedTree(p.Left, indentationLevel+1)
		printIndentedTree(p.Right, indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, term.Kind())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, term.Kind(), term, term.Kind())
}

func main() {
	input := `(fn_a (fn_b (89 'A 'B (67 3.27))) (fn_c 66 3 53 hello))`

	terms, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, term := range terms {
		printTree(term)
	}
}
