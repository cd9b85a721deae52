package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of a term
func Print(w io.Writer, t Term) {
	printLevel(w, t, 0)
}

func printLevel(w io.Writer, t Term, level int) {
	indent := strings.Repeat("    ", level)
	if t == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, t.Kind())
	switch t := t.(type) {
	case PairTerm:
		fmt.Fprintf(w, "\n")
		printLevel(w, t.Left, level+1)
		printLevel(w, t.Right, level+1)
	case Unit:
		fmt.Fprintf(w, "\n")
	default:
		fmt.Fprintf(w, ": %s\n", Encode(t))
	}
}

// Encode transforms a term into its textual representation. Groups that
// re-parse to the same term are written back as groups.
func Encode(t Term) []byte {
	return []byte(encodeTerm(t))
}

func encodeTerm(t Term) string {
	switch t := t.(type) {
	case nil:
		return ":nil"
	case Atom:
		if t.Name == "" {
			return "'"
		}
		return t.Name
	case Unit:
		return "()"
	case TypeLiteral:
		return fmt.Sprintf("U%d", uint64(t.Level))
	case PairTerm:
		elems := Elements(t)
		parts := make([]string, 0, len(elems))
		for i := range elems {
			parts = append(parts, encodeTerm(elems[i]))
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, " "))
	}
	return fmt.Sprintf("<%T>", t)
}
