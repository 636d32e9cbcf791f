// Package compose wraps the docker compose invocations for the meetx dev
// stack: fixed project name, fixed compose file, environment file required.
package compose

import (
	"context"
	"errors"
	"fmt"
	"os"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/execx"
)

// ErrEmptyService is returned before any external process runs when a
// service-scoped operation is invoked without a service name.
var ErrEmptyService = errors.New("compose: service name must not be empty")

type Stack struct {
	Runner  execx.Runner
	Project string
	File    string
	EnvFile string
}

func NewStack(runner execx.Runner) *Stack {
	return &Stack{
		Runner:  runner,
		Project: appconfig.ComposeProject,
		File:    appconfig.ComposeFile,
		EnvFile: appconfig.EnvFile(),
	}
}

// baseArgs builds the shared prefix of every compose invocation.
func (s *Stack) baseArgs() []string {
	return []string{
		"compose",
		"-p", s.Project,
		"--env-file", s.EnvFile,
		"-f", s.File,
	}
}

func (s *Stack) checkEnvFile() error {
	if _, err := os.Stat(s.EnvFile); err != nil {
		return fmt.Errorf("compose: environment file %s: %w", s.EnvFile, err)
	}
	return nil
}

// Up starts the whole stack detached.
func (s *Stack) Up(ctx context.Context) error {
	if err := s.checkEnvFile(); err != nil {
		return err
	}
	args := append(s.baseArgs(), "up", "-d")
	return s.Runner.Run(ctx, "docker", args...)
}

// RestartService rebuilds and force-recreates one named service.
func (s *Stack) RestartService(ctx context.Context, service string) error {
	if service == "" {
		return ErrEmptyService
	}
	if err := s.checkEnvFile(); err != nil {
		return err
	}
	args := append(s.baseArgs(), "up", "-d", "--build", "--force-recreate", service)
	return s.Runner.Run(ctx, "docker", args...)
}
