// The pie command tokenizes, parses and type checks S-expression sources.
package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// rootEnv holds the flags shared by every command.
type rootEnv struct {
	flagLogLevel string
	flagLogFile  string
	flagJobs     int

	logs *logSetup
}

func newRootCmd() (*cobra.Command, *rootEnv) {
	env := &rootEnv{}

	ret := &cobra.Command{
		Use:   "pie",
		Short: "S-expression front-end and type-of judgment",
		Long: `
pie reads S-expression sources from files, or stdin when no file is given,
and prints their tokens, their terms or the type of every top-level term.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs, err := setupLogging(cmd.ErrOrStderr(), env.flagLogLevel, env.flagLogFile)
			if err != nil {
				return err
			}
			env.logs = logs
			return nil
		},
	}
	ret.PersistentFlags().StringVar(&env.flagLogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	ret.PersistentFlags().StringVar(&env.flagLogFile, "log-file", "", "Also write JSON logs to this file")
	ret.PersistentFlags().IntVarP(&env.flagJobs, "jobs", "j", runtime.NumCPU(), "Number of inputs processed concurrently")

	ret.AddCommand(getTokensCmd(env))
	ret.AddCommand(getParseCmd(env))
	ret.AddCommand(getCheckCmd(env))

	return ret, env
}

// execute runs the command tree and releases the logging resources whether
// or not the command succeeded.
func (e *rootEnv) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		slog.Error("pie failed", "err", err)
	}
	if cerr := e.logs.Close(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	cmd, env := newRootCmd()
	if err := env.execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}
