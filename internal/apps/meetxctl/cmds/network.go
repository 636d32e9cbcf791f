package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/logs"
)

func newNetworkCmds(docker dockerProvider) []*cobra.Command {
	lsCmd := &cobra.Command{
		Use:   "network-ls",
		Short: "List Docker networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, err := docker()
			if err != nil {
				return err
			}
			networks, err := dc.ListNetworks(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range networks {
				fmt.Printf("%-14.12s %-28s %-10s %s\n", n.ID, n.Name, n.Driver, n.Scope)
			}
			return nil
		},
	}

	createCmd := &cobra.Command{
		Use:   "network-create [network=<name>]",
		Short: "Create the stack's isolated network",
		Long: fmt.Sprintf(`Create a bridge network for the stack. Defaults to %q.

Fails if the network already exists.`, appconfig.StackNetwork),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKVArgs(args, "network"); err != nil {
				return err
			}
			name, ok := kvArg(args, "network")
			if !ok || name == "" {
				name = appconfig.StackNetwork
			}

			dc, err := docker()
			if err != nil {
				return err
			}

			// The daemon happily creates duplicate network names, so the
			// name must be verified free first.
			networks, err := dc.ListNetworks(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range networks {
				if n.Name == name {
					return fmt.Errorf("network %s already exists (id %s)", name, n.ID)
				}
			}

			created, err := dc.CreateNetwork(cmd.Context(), name)
			if err != nil {
				return err
			}
			logs.Infof("created network %s (%s)", created.Name, created.ID)
			return nil
		},
	}

	pruneCmd := &cobra.Command{
		Use:   "network-prune",
		Short: "Remove all unused Docker networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, err := docker()
			if err != nil {
				return err
			}
			deleted, err := dc.PruneNetworks(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range deleted {
				fmt.Println(name)
			}
			logs.Infof("pruned %d networks", len(deleted))
			return nil
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "network",
		Short: "Inspect the stack's network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, err := docker()
			if err != nil {
				return err
			}
			n, err := dc.InspectNetwork(cmd.Context(), appconfig.StackNetwork)
			if err != nil {
				return err
			}
			fmt.Printf("name:   %s\nid:     %s\ndriver: %s\nscope:  %s\n", n.Name, n.ID, n.Driver, n.Scope)
			return nil
		},
	}

	return []*cobra.Command{lsCmd, createCmd, pruneCmd, inspectCmd}
}
