package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/compose"
	"github.com/nourabuild/meetxctl/internal/execx"
)

func newComposeCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Start the multi-container dev stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compose.NewStack(runner).Up(cmd.Context())
		},
	}
}

func newComposeServiceCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "composervice service=<name>",
		Short: "Rebuild and restart one service of the dev stack",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKVArgs(args, "service"); err != nil {
				return err
			}
			service, ok := kvArg(args, "service")
			if !ok || service == "" {
				return fmt.Errorf("service name is required: meetxctl composervice service=<name>")
			}
			return compose.NewStack(runner).RestartService(cmd.Context(), service)
		},
	}
}
