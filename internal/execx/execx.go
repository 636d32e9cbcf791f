// Package execx is the single seam between meetxctl and the external tools
// it wraps (poetry, alembic via poetry, uvicorn, lsof, docker compose).
// Commands stream to the user's terminal; exit statuses are preserved so the
// dispatcher can propagate them as its own.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nourabuild/meetxctl/internal/logs"
)

//go:generate mockgen -source=execx.go -destination=mocks/runner.go -package=mocks

// ToolError reports a wrapped external tool exiting non-zero. The tool's own
// output already went to the terminal; the message is deliberately short.
type ToolError struct {
	Name string
	Code int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// ExitCode returns the wrapped tool's exit status.
func (e *ToolError) ExitCode() int {
	return e.Code
}

// ExitCodeOf maps any error to the process exit code meetxctl should use:
// 0 for nil, the tool's own status for ToolError, 1 otherwise.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Code
	}
	return 1
}

// Runner abstracts process execution so command logic can be tested with
// mocks instead of real tools.
type Runner interface {
	// Run executes a command attached to the caller's stdio and returns a
	// *ToolError on non-zero exit.
	Run(ctx context.Context, name string, args ...string) error

	// Capture executes a command and returns its stdout. Stderr streams to
	// the terminal. Non-zero exit yields a *ToolError alongside whatever
	// stdout was produced.
	Capture(ctx context.Context, name string, args ...string) (string, error)
}

type osRunner struct{}

// New returns the Runner backed by os/exec.
func New() Runner {
	return osRunner{}
}

func (osRunner) Run(ctx context.Context, name string, args ...string) error {
	logs.Debugf("+ %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return wrapExit(name, cmd.Run())
}

func (osRunner) Capture(ctx context.Context, name string, args ...string) (string, error) {
	logs.Debugf("+ %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	return string(out), wrapExit(name, err)
}

func wrapExit(name string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Name: name, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("execx: %s: %w", name, err)
}
