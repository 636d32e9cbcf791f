package cmds

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/state"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [n=<count>]",
		Short: "List recent meetxctl invocations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKVArgs(args, "n"); err != nil {
				return err
			}

			limit := 20
			if raw, ok := kvArg(args, "n"); ok {
				n, err := strconv.Atoi(raw)
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid count %q: meetxctl history n=<positive number>", raw)
				}
				limit = n
			}

			store, err := state.DefaultHistoryStore(cmd.Context())
			if err != nil {
				return err
			}
			invocations, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			for _, inv := range invocations {
				line := inv.Operation
				if len(inv.Args) > 0 {
					line += " " + strings.Join(inv.Args, " ")
				}
				fmt.Printf("%s  exit=%d  %-8s  %s\n",
					inv.StartedAt.Local().Format(time.DateTime),
					inv.ExitCode,
					inv.Duration.Round(time.Millisecond),
					line,
				)
			}
			return nil
		},
	}
}
