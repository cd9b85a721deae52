package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/pie"
	"github.com/xiam/pie/ast"
)

func main() {
	input := `(fn_a (fn_b (89 'A 'B (67 3.27))) (fn_c 66 3 53 hello))`

	judgments, err := pie.Check([]byte(input))
	if err != nil {
		log.Fatal("pie.Check:", err)
	}

	for _, j := range judgments {
		ast.Print(os.Stdout, j.Term)
		fmt.Printf("%v\n", j)
	}
}
