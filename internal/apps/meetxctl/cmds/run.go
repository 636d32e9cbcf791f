package cmds

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/execx"
	"github.com/nourabuild/meetxctl/internal/logs"
)

func newRunCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the application with live reload",
		Long: fmt.Sprintf(`Free port %d by terminating any process listening on it, then start
the application entrypoint under uvicorn with auto-reload.`, appconfig.AppPort),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Best-effort: lsof exits 1 when nothing listens, which is fine.
			freePort(cmd, runner)

			return runner.Run(ctx, "poetry", "run", "uvicorn",
				appconfig.AppEntrypoint,
				"--reload",
				"--host", "0.0.0.0",
				"--port", fmt.Sprintf("%d", appconfig.AppPort),
			)
		},
	}
}

func freePort(cmd *cobra.Command, runner execx.Runner) {
	ctx := cmd.Context()
	port := fmt.Sprintf("-i:%d", appconfig.AppPort)

	out, err := runner.Capture(ctx, "lsof", "-t", port)
	if err != nil {
		logs.Debugf("no listener on port %d: %v", appconfig.AppPort, err)
		return
	}

	pids := strings.Fields(out)
	if len(pids) == 0 {
		return
	}

	logs.Warnf("terminating process(es) on port %d: %s", appconfig.AppPort, strings.Join(pids, ", "))
	if err := runner.Run(ctx, "kill", append([]string{"-9"}, pids...)...); err != nil {
		logs.Warnf("can't terminate listener: %v", err)
	}
}

func newAgentCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Start the speech-recognition sidecar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "run", "python", "-m", appconfig.AgentModule)
		},
	}
}
