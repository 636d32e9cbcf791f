package cmds

import (
	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/execx"
)

func newLintCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Run the static checker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "run", "ruff", "check", "app")
		},
	}
}

func newLintFixCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "lint-fix",
		Short: "Run the static checker and apply auto-fixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "run", "ruff", "check", "--fix", "app")
		},
	}
}

func newFormatCmd(runner execx.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Reformat the source tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd.Context(), "poetry", "run", "ruff", "format", "app")
		},
	}
}
