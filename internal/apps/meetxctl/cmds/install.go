package cmds

import (
	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/execx"
)

func newInstallCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install project dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "install")
		},
	}
}

func newLockCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Regenerate the dependency lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "lock")
		},
	}
}
