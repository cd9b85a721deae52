// Package pie reads S-expression source into closed terms and computes
// their types.
package pie

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/xiam/pie/ast"
	"github.com/xiam/pie/parser"
)

// Reader parses terms out of an io.Reader.
type Reader struct {
	r io.Reader
}

// Judgment pairs a term with its type.
type Judgment struct {
	Term ast.Term
	Type ast.Type
}

func (j Judgment) String() string {
	return fmt.Sprintf("%v : %v", j.Term, j.Type)
}

// Parse returns one term per top-level group in the input.
func Parse(in []byte) ([]ast.Term, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// Check parses the input and judges every top-level term.
func Check(in []byte) ([]Judgment, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Check()
}

// NewReader creates a Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads the whole input and parses it.
func (r *Reader) Parse() ([]ast.Term, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	terms, err := parser.ParseBytes(in)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed", "terms", len(terms), "bytes", len(in))
	return terms, nil
}

// Check reads the whole input, parses it and judges every term.
func (r *Reader) Check() ([]Judgment, error) {
	terms, err := r.Parse()
	if err != nil {
		return nil, err
	}
	return Judge(terms)
}

// Judge computes the type of each term, in order.
func Judge(terms []ast.Term) ([]Judgment, error) {
	judgments := make([]Judgment, 0, len(terms))
	for _, term := range terms {
		typ, err := ast.TypeOf(term)
		if err != nil {
			return nil, err
		}
		judgments = append(judgments, Judgment{Term: term, Type: typ})
	}
	return judgments, nil
}
