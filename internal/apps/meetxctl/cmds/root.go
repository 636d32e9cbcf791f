// Package cmds wires every meetxctl operation into a cobra command tree.
// Each operation maps to one fixed external-command sequence; sequences halt
// on the first failure and the failing tool's exit status becomes meetxctl's.
package cmds

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/dockerclient"
	"github.com/nourabuild/meetxctl/internal/execx"
	"github.com/nourabuild/meetxctl/internal/logs"
	"github.com/nourabuild/meetxctl/internal/state"
	"github.com/nourabuild/meetxctl/internal/version"
)

var verbosity int

func Execute(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:   "meetxctl OPERATION [KEY=value ...]",
		Short: "Lifecycle task runner for the meetx backend",
		Long: `meetxctl drives the meetx project's build, migration, and release
workflow: dependency management, linting, Alembic migrations, the docker
compose dev stack, and versioned image pushes.

Parameters are positional KEY=value pairs, e.g.:

  meetxctl version SEMVER=minor
  meetxctl migrate msg="add meeting status"
  meetxctl composervice service=api`,
		Version: version.Get(),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logs.SetDebugVerbosity(verbosity)
			return nil
		},
		// we will handle that
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity level")

	runner := execx.New()
	docker := dockerclient.DefaultDockerClient

	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newInstallCmd(runner))
	rootCmd.AddCommand(newLockCmd(runner))
	rootCmd.AddCommand(newRunCmd(runner))
	rootCmd.AddCommand(newLintCmd(runner))
	rootCmd.AddCommand(newLintFixCmd(runner))
	rootCmd.AddCommand(newFormatCmd(runner))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newMigrateCmds(runner)...)
	rootCmd.AddCommand(newDockerPushCmd(docker))
	rootCmd.AddCommand(newComposeCmd(runner))
	rootCmd.AddCommand(newComposeServiceCmd(runner))
	rootCmd.AddCommand(newNetworkCmds(docker)...)
	rootCmd.AddCommand(newAccessDBCmd(docker))
	rootCmd.AddCommand(newAgentCmd(runner))
	rootCmd.AddCommand(newHistoryCmd())

	start := time.Now()
	err := rootCmd.ExecuteContext(ctx)
	recordInvocation(ctx, time.Since(start), err)

	return err
}

// recordInvocation appends the run to the local history DB. Best-effort:
// history must never change an operation's outcome.
func recordInvocation(ctx context.Context, elapsed time.Duration, runErr error) {
	args := os.Args[1:]
	if len(args) == 0 || args[0] == "" || args[0][0] == '-' {
		return
	}

	store, err := state.DefaultHistoryStore(ctx)
	if err != nil {
		logs.Debugf("history unavailable: %v", err)
		return
	}

	inv := state.Invocation{
		Operation: args[0],
		Args:      args[1:],
		ExitCode:  execx.ExitCodeOf(runErr),
		Duration:  elapsed,
		StartedAt: time.Now().Add(-elapsed),
	}
	if err := store.Record(ctx, inv); err != nil {
		logs.Debugf("can't record invocation: %v", err)
	}
}
