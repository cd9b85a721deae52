package pie

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/pie/ast"
	"github.com/xiam/pie/parser"
)

func TestParse(t *testing.T) {
	terms, err := Parse([]byte(`(Giuseppe Verdi) ()`))
	require.NoError(t, err)
	require.Len(t, terms, 2)

	assert.Equal(t, ast.NewPairTerm(ast.Atom{Name: "Giuseppe"}, ast.Atom{Name: "Verdi"}), terms[0])
	assert.Equal(t, ast.Unit{}, terms[1])
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		In  string
		Out []string
	}{
		{
			In:  ``,
			Out: []string{},
		},
		{
			In:  `()`,
			Out: []string{`() : Unit`},
		},
		{
			In:  `(atom) (1.23)`,
			Out: []string{`atom : Atom`, `1.23 : Atom`},
		},
		{
			In:  `(Giuseppe Verdi)`,
			Out: []string{`(Giuseppe Verdi) : (Pair Atom Atom)`},
		},
		{
			In:  `(Giuseppe Verdi Louis)`,
			Out: []string{`(Giuseppe Verdi Louis) : (Pair Atom (Pair Atom (Pair Atom Unit)))`},
		},
		{
			In:  `(a ())`,
			Out: []string{`(a ()) : (Pair Atom Unit)`},
		},
	}

	for i := range testCases {
		judgments, err := Check([]byte(testCases[i].In))
		require.NoError(t, err)

		out := make([]string, 0, len(judgments))
		for _, j := range judgments {
			out = append(out, j.String())
		}
		assert.Equal(t, testCases[i].Out, out, "input: %q", testCases[i].In)
	}
}

func TestCheckErrors(t *testing.T) {
	_, err := Check([]byte(`(a b`))
	assert.True(t, errors.Is(err, parser.ErrUnclosedParen))

	_, err = NewReader(iotest.ErrReader(errors.New("boom"))).Check()
	assert.EqualError(t, err, "boom")
}

func TestJudge(t *testing.T) {
	judgments, err := Judge([]ast.Term{ast.TypeLiteral{Level: 0}, ast.Atom{Name: "a"}})
	require.NoError(t, err)
	require.Len(t, judgments, 2)
	assert.Equal(t, ast.Universe{Level: 1}, judgments[0].Type)
	assert.Equal(t, "U0 : U1", judgments[0].String())

	_, err = Judge([]ast.Term{ast.TypeLiteral{Level: math.MaxUint64}})
	assert.True(t, errors.Is(err, ast.ErrUniverseOverflow))
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("(foo 'bar\r\n 123 1.23)"))
	terms, err := r.Parse()
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "(foo bar 123 1.23)", terms[0].String())
}
