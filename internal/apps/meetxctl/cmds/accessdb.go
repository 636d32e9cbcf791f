package cmds

import (
	"github.com/spf13/cobra"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/execx"
)

func newAccessDBCmd(docker dockerProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "accessdb",
		Short: "Open an interactive database shell in the running db container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dc, err := docker()
			if err != nil {
				return err
			}

			containerID, err := dc.FindComposeContainer(ctx, appconfig.ComposeProject, appconfig.DBService)
			if err != nil {
				return err
			}

			code, err := dc.ExecInteractive(ctx, containerID, []string{
				"psql", "-U", appconfig.DBUser, "-d", appconfig.DBName,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				return &execx.ToolError{Name: "psql", Code: code}
			}
			return nil
		},
	}
}
