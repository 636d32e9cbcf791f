// Tests in this file verify the compose command lines sent to docker.
package compose

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nourabuild/meetxctl/internal/execx/mocks"
	"go.uber.org/mock/gomock"
)

func testStack(t *testing.T, runner *mocks.MockRunner) *Stack {
	t.Helper()

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("POSTGRES_PASSWORD=dev\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	return &Stack{
		Runner:  runner,
		Project: "meetx",
		File:    "docker-compose.yml",
		EnvFile: envFile,
	}
}

func TestUp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stack := testStack(t, runner)
	ctx := context.Background()

	runner.EXPECT().Run(ctx, "docker",
		"compose", "-p", "meetx", "--env-file", stack.EnvFile, "-f", "docker-compose.yml",
		"up", "-d",
	).Return(nil)

	if err := stack.Up(ctx); err != nil {
		t.Fatalf("Up failed: %v", err)
	}
}

func TestUpMissingEnvFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl) // no expectations
	stack := &Stack{
		Runner:  runner,
		Project: "meetx",
		File:    "docker-compose.yml",
		EnvFile: filepath.Join(t.TempDir(), "missing.env"),
	}

	if err := stack.Up(context.Background()); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestRestartService(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	stack := testStack(t, runner)
	ctx := context.Background()

	runner.EXPECT().Run(ctx, "docker",
		"compose", "-p", "meetx", "--env-file", stack.EnvFile, "-f", "docker-compose.yml",
		"up", "-d", "--build", "--force-recreate", "api",
	).Return(nil)

	if err := stack.RestartService(ctx, "api"); err != nil {
		t.Fatalf("RestartService failed: %v", err)
	}
}

func TestRestartServiceEmptyName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl) // no expectations

	err := testStack(t, runner).RestartService(context.Background(), "")
	if !errors.Is(err, ErrEmptyService) {
		t.Fatalf("RestartService = %v, want ErrEmptyService", err)
	}
}
