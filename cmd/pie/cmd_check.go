package main

import (
	"github.com/spf13/cobra"

	"github.com/xiam/pie"
)

// checkEnv provides the environment for the check command.
type checkEnv struct {
	root *rootEnv
}

// getCheckCmd returns the definition of the check command.
func getCheckCmd(root *rootEnv) *cobra.Command {
	env := &checkEnv{root: root}

	return &cobra.Command{
		Use:     "check [file...]",
		Aliases: []string{"typeof"},
		Short:   "Print the type of every top-level term",
		RunE:    env.runCheckCmd,
	}
}

func (e *checkEnv) runCheckCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sources, err := readSources(ctx, cmd.InOrStdin(), args, e.root.flagJobs)
	if err != nil {
		return err
	}
	return processSources(ctx, cmd.OutOrStdout(), sources, e.root.flagJobs, func(src source) (string, error) {
		judgments, err := pie.Check(src.data)
		if err != nil {
			return "", err
		}
		return lines(judgments), nil
	})
}
