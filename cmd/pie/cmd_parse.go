package main

import (
	"bytes"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/xiam/pie/ast"
	"github.com/xiam/pie/parser"
)

// dumpConfig shows the Go structure of terms instead of their String form.
var dumpConfig = spew.ConfigState{Indent: " ", DisableMethods: true}

// parseEnv provides the environment for the parse command.
type parseEnv struct {
	root *rootEnv

	flagDump bool // dump the Go values of the terms
	flagTree bool // print an indented tree per term
}

// getParseCmd returns the definition of the parse command.
func getParseCmd(root *rootEnv) *cobra.Command {
	env := &parseEnv{root: root}

	ret := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Print the terms of each input",
		Long: `
Parse each input and print one term per top-level group. Groups of one
element print as the element itself.`,
		RunE: env.runParseCmd,
	}
	ret.Flags().BoolVar(&env.flagDump, "dump", false, "Dump the term values")
	ret.Flags().BoolVar(&env.flagTree, "tree", false, "Print each term as an indented tree")
	ret.MarkFlagsMutuallyExclusive("dump", "tree")

	return ret
}

func (e *parseEnv) runParseCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sources, err := readSources(ctx, cmd.InOrStdin(), args, e.root.flagJobs)
	if err != nil {
		return err
	}
	return processSources(ctx, cmd.OutOrStdout(), sources, e.root.flagJobs, e.formatTerms)
}

func (e *parseEnv) formatTerms(src source) (string, error) {
	terms, err := parser.ParseBytes(src.data)
	if err != nil {
		return "", err
	}

	switch {
	case e.flagDump:
		var sb strings.Builder
		for _, term := range terms {
			sb.WriteString(dumpConfig.Sdump(term))
		}
		return sb.String(), nil

	case e.flagTree:
		var buf bytes.Buffer
		for _, term := range terms {
			ast.Print(&buf, term)
		}
		return buf.String(), nil
	}

	return lines(terms), nil
}
