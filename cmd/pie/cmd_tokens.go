package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xiam/pie/lexer"
)

// tokensEnv provides the environment for the tokens command.
type tokensEnv struct {
	root *rootEnv

	flagWhitespace bool // include whitespace tokens in the listing
}

// getTokensCmd returns the definition of the tokens command.
func getTokensCmd(root *rootEnv) *cobra.Command {
	env := &tokensEnv{root: root}

	ret := &cobra.Command{
		Use:     "tokens [file...]",
		Aliases: []string{"lex"},
		Short:   "Print the tokens of each input",
		RunE:    env.runTokensCmd,
	}
	ret.Flags().BoolVarP(&env.flagWhitespace, "whitespace", "w", false, "Include whitespace tokens")

	return ret
}

func (e *tokensEnv) runTokensCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sources, err := readSources(ctx, cmd.InOrStdin(), args, e.root.flagJobs)
	if err != nil {
		return err
	}
	return processSources(ctx, cmd.OutOrStdout(), sources, e.root.flagJobs, e.formatTokens)
}

func (e *tokensEnv) formatTokens(src source) (string, error) {
	tokens, err := lexer.TokenizeBytes(src.data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.IsWhitespace() && !e.flagWhitespace {
			continue
		}
		line, col := tok.Pos()
		text := tok.Text()
		if tok.IsWhitespace() {
			text = tok.Whitespace().String()
		}
		fmt.Fprintf(&sb, "%d:%d\t%v\t%q\n", line, col, tok.Type(), text)
	}
	return sb.String(), nil
}
