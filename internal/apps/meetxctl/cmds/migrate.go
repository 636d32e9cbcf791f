package cmds

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/execx"
	"github.com/nourabuild/meetxctl/internal/logs"
	"github.com/nourabuild/meetxctl/internal/migrate"
)

func newMigrateCmds(runner execx.Runner) []*cobra.Command {
	alembic := migrate.NewAlembic(runner)

	migrateCmd := &cobra.Command{
		Use:   `migrate msg="<revision message>"`,
		Short: "Autogenerate a migration and apply all pending ones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkKVArgs(args, "msg"); err != nil {
				return err
			}
			msg, ok := kvArg(args, "msg")
			if !ok || msg == "" {
				return fmt.Errorf(`migration message is required: meetxctl migrate msg="describe the change"`)
			}
			return alembic.Generate(cmd.Context(), msg)
		},
	}

	upCmd := &cobra.Command{
		Use:   "migrate-up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return alembic.Up(cmd.Context())
		},
	}

	downCmd := &cobra.Command{
		Use:   "migrate-down",
		Short: "Roll back exactly one migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return alembic.Down(cmd.Context())
		},
	}

	statusCmd := &cobra.Command{
		Use:   "migrate-status",
		Short: "Show the currently applied revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return alembic.Status(cmd.Context())
		},
	}

	historyCmd := &cobra.Command{
		Use:   "migrate-history",
		Short: "List the migration history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return alembic.History(cmd.Context())
		},
	}

	resetCmd := &cobra.Command{
		Use:   "migrate-reset",
		Short: "Roll back to an empty schema and reapply all migrations",
		Long: `Destructive: downgrades the database to base and reapplies every
migration. Requires interactive confirmation; anything but an explicit
yes aborts with no side effect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := alembic.Reset(cmd.Context(), migrate.Confirmer(logs.PromptConfirm))
			if errors.Is(err, migrate.ErrDeclined) {
				logs.Infof("aborted, nothing changed")
			}
			return err
		},
	}

	return []*cobra.Command{migrateCmd, upCmd, downCmd, statusCmd, historyCmd, resetCmd}
}
