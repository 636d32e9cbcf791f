package cmds

import (
	"github.com/spf13/cobra"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/dockerclient"
	"github.com/nourabuild/meetxctl/internal/logs"
	"github.com/nourabuild/meetxctl/internal/project"
)

// dockerProvider hands commands their Docker daemon capability. Resolution is
// deferred to RunE so operations that never touch the daemon keep working
// without one.
type dockerProvider func() (dockerclient.DockerClient, error)

func newDockerPushCmd(docker dockerProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "docker-push",
		Short: "Build the release image and push version and latest tags",
		Long: `Build the container image from the project root, tag it with the
current project version and with latest, and push both tags.

Both tags always reference the same build; the version is resolved from
the metadata file at invocation time, never cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := project.Load(".")
			if err != nil {
				return err
			}

			repo := appconfig.ImageRepo()
			tags := []string{
				repo + ":" + proj.Version,
				repo + ":latest",
			}

			dc, err := docker()
			if err != nil {
				return err
			}

			logs.Banner("release " + proj.Name + " " + proj.Version)

			if dc.ImageExists(ctx, tags[0]) {
				logs.Warnf("image %s already exists locally and will be replaced", tags[0])
			}

			if err := dc.BuildImage(ctx, proj.Root, tags); err != nil {
				return err
			}
			for _, tag := range tags {
				if err := dc.PushImage(ctx, tag); err != nil {
					return err
				}
			}

			logs.Infof("pushed %s and %s", tags[0], tags[1])
			return nil
		},
	}
}
