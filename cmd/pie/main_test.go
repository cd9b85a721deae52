package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/pie/lexer"
	"github.com/xiam/pie/parser"
)

func runPie(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runPieEnv(t, stdin, args...)
	return out, err
}

func runPieEnv(t *testing.T, stdin string, args ...string) (string, *rootEnv, error) {
	t.Helper()

	cmd, env := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := env.execute(context.Background(), cmd)
	return stdout.String(), env, err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckStdin(t *testing.T) {
	out, err := runPie(t, "(Giuseppe Verdi)\n(Giuseppe Verdi Louis)", "check")
	require.NoError(t, err)
	assert.Equal(t,
		"(Giuseppe Verdi) : (Pair Atom Atom)\n"+
			"(Giuseppe Verdi Louis) : (Pair Atom (Pair Atom (Pair Atom Unit)))\n",
		out)
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pie", "() (atom)")
	b := writeFile(t, dir, "b.pie", "(foo 'bar 123 1.23)")

	out, err := runPie(t, "", "parse", "-j", "2", a, b)
	require.NoError(t, err)
	assert.Equal(t,
		"==> "+a+" <==\n()\natom\n\n"+
			"==> "+b+" <==\n(foo bar 123 1.23)\n",
		out)
}

func TestParseTree(t *testing.T) {
	out, err := runPie(t, "(a ())", "parse", "--tree")
	require.NoError(t, err)
	assert.Equal(t, "(pair)\n    (atom): a\n    (unit)\n", out)
}

func TestParseDump(t *testing.T) {
	out, err := runPie(t, "(a b)", "parse", "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, `(string) (len=1) "a"`)
	assert.Contains(t, out, `(string) (len=1) "b"`)
	assert.Contains(t, out, "Left: (ast.Atom)")
	assert.Contains(t, out, "Right: (ast.Atom)")
	assert.NotContains(t, out, "(a b)")
}

func TestTokens(t *testing.T) {
	out, err := runPie(t, "(a 'b)", "tokens")
	require.NoError(t, err)
	assert.Equal(t,
		"1:1\topen_paren\t\"(\"\n"+
			"1:2\tword\t\"a\"\n"+
			"1:4\tquoted_atom\t\"b\"\n"+
			"1:6\tclose_paren\t\")\"\n",
		out)
}

func TestTokensWhitespace(t *testing.T) {
	out, err := runPie(t, "a\tb", "tokens", "--whitespace")
	require.NoError(t, err)
	assert.Equal(t,
		"1:1\tword\t\"a\"\n"+
			"1:2\twhitespace\t\"tab\"\n"+
			"1:6\tword\t\"b\"\n",
		out)
}

func TestErrors(t *testing.T) {
	_, err := runPie(t, "(a", "check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnclosedParen))
	assert.True(t, strings.HasPrefix(err.Error(), stdinName+": parser: unclosed paren"), err.Error())

	_, err = runPie(t, `("a")`, "tokens")
	assert.True(t, errors.Is(err, lexer.ErrUnrecognizedCharacter))

	_, err = runPie(t, "", "parse", filepath.Join(t.TempDir(), "missing.pie"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")

	_, err = runPie(t, "()", "check", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pie.log")

	_, err := runPie(t, "(a)", "check", "--log-level", "debug", "--log-file", logFile)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"processed"`)
	assert.Contains(t, string(data), `"source":"<stdin>"`)
}

func TestLogFileClosedOnFailure(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pie.log")

	_, env, err := runPieEnv(t, "(a", "check", "--log-level", "debug", "--log-file", logFile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnclosedParen))

	require.NotNil(t, env.logs)
	assert.Nil(t, env.logs.file)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"pie failed"`)
}

func TestLogFileClosedOnSuccess(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pie.log")

	_, env, err := runPieEnv(t, "(a)", "check", "--log-file", logFile)
	require.NoError(t, err)

	require.NotNil(t, env.logs)
	assert.Nil(t, env.logs.file)
}
