package cmds

import (
	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/cleaner"
	"github.com/nourabuild/meetxctl/internal/logs"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove Python cache and build artifacts",
		Long: `Remove __pycache__, tool caches, build/dist directories, egg-info
directories, and compiled bytecode files under the project tree.

Missing paths are not errors; the sweep is best-effort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := cleaner.New().Clean(".")
			if err != nil {
				return err
			}
			logs.Infof("removed %d artifacts", removed)
			return nil
		},
	}
}
