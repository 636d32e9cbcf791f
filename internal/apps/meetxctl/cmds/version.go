package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/logs"
	"github.com/nourabuild/meetxctl/internal/project"
	"github.com/nourabuild/meetxctl/internal/versions"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version [SEMVER=patch|minor|major|premajor|preminor|prerelease]",
		Short: "Print or bump the project version",
		Long: `Without arguments, print the version from the project metadata file.

With SEMVER=<bump-type>, apply the bump and persist the new version.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKVArgs(args, "SEMVER"); err != nil {
				return err
			}

			proj, err := project.Load(".")
			if err != nil {
				return err
			}

			bump, ok := kvArg(args, "SEMVER")
			if !ok {
				if !versions.IsValid(proj.Version) {
					logs.Warnf("%s is not a semantic version; bumps will fail until it is fixed", proj.Version)
				}
				fmt.Println(proj.Version)
				return nil
			}

			kind, err := versions.ParseBumpKind(bump)
			if err != nil {
				return err
			}
			next, err := versions.Bump(proj.Version, kind)
			if err != nil {
				return err
			}
			if err := proj.WriteVersion(next); err != nil {
				return err
			}

			logs.Infof("%s: %s", proj.Name, next)
			return nil
		},
	}
}
