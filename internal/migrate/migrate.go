// Package migrate wraps the project's Alembic migration tool. Every
// operation is a fixed command sequence run through execx; sequences halt on
// the first failure and never roll back earlier steps.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nourabuild/meetxctl/internal/execx"
	"github.com/nourabuild/meetxctl/internal/logs"
)

// ErrEmptyMessage is returned before any external process runs when migrate
// is invoked without a revision message.
var ErrEmptyMessage = errors.New("migrate: revision message must not be empty")

// ErrDeclined is returned when the user does not confirm a destructive reset.
var ErrDeclined = errors.New("migrate: reset declined")

// Confirmer asks the user a yes/no question. Injected so the reset gate can
// be tested without a terminal.
type Confirmer func(prompt string) (bool, error)

type Alembic struct {
	runner execx.Runner
}

func NewAlembic(runner execx.Runner) *Alembic {
	return &Alembic{runner: runner}
}

func (a *Alembic) run(ctx context.Context, args ...string) error {
	return a.runner.Run(ctx, "poetry", append([]string{"run", "alembic"}, args...)...)
}

// Generate autogenerates a revision from the current schema diff and then
// applies all pending migrations.
func (a *Alembic) Generate(ctx context.Context, msg string) error {
	if strings.TrimSpace(msg) == "" {
		return ErrEmptyMessage
	}
	if err := a.run(ctx, "revision", "--autogenerate", "-m", msg); err != nil {
		return err
	}
	return a.Up(ctx)
}

// Up applies all pending migrations.
func (a *Alembic) Up(ctx context.Context) error {
	return a.run(ctx, "upgrade", "head")
}

// Down rolls back exactly one migration.
func (a *Alembic) Down(ctx context.Context) error {
	return a.run(ctx, "downgrade", "-1")
}

// Status shows the currently applied revision.
func (a *Alembic) Status(ctx context.Context) error {
	return a.run(ctx, "current")
}

// History lists the revision chain.
func (a *Alembic) History(ctx context.Context) error {
	return a.run(ctx, "history", "--verbose")
}

// Reset rolls back to an empty schema and reapplies everything. It runs
// nothing unless confirm returns true.
func (a *Alembic) Reset(ctx context.Context, confirm Confirmer) error {
	ok, err := confirm("This will drop the schema and reapply all migrations. Continue?")
	if err != nil {
		return fmt.Errorf("migrate: confirm reset: %w", err)
	}
	if !ok {
		return ErrDeclined
	}

	logs.Warnf("resetting database schema")
	if err := a.run(ctx, "downgrade", "base"); err != nil {
		return err
	}
	return a.Up(ctx)
}
