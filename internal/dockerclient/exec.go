package dockerclient

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/moby/term"
)

type ContainerExecutor interface {
	// FindComposeContainer returns the ID of the running container backing
	// one compose service of the given project.
	FindComposeContainer(ctx context.Context, project, service string) (string, error)

	// ExecInteractive runs cmd inside a container with a real TTY attached
	// and returns the command's exit code.
	ExecInteractive(ctx context.Context, containerID string, cmd []string) (int, error)
}

func (dc *dockerClient) FindComposeContainer(ctx context.Context, project, service string) (string, error) {
	args := filters.NewArgs()
	args.Add("label", "com.docker.compose.project="+project)
	args.Add("label", "com.docker.compose.service="+service)
	args.Add("status", "running")

	containers, err := dc.client.ContainerList(ctx, container.ListOptions{Filters: args})
	if err != nil {
		return "", fmt.Errorf("container list: %w", err)
	}
	if len(containers) == 0 {
		return "", fmt.Errorf("no running container for service %q in project %q (is the stack up?)", service, project)
	}

	return containers[0].ID, nil
}

// ExecInteractive emulates:
//
//	docker exec -it CONTAINER CMD...
//
// - attaches with a real TTY (so psql line editing and paging work)
// - forwards terminal resizes
// - returns the exec'd command's exit status
func (dc *dockerClient) ExecInteractive(ctx context.Context, containerID string, cmd []string) (int, error) {
	created, err := dc.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		Tty:          true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return 0, fmt.Errorf("exec create: %w", err)
	}
	execID := created.ID

	attach, err := dc.client.ContainerExecAttach(ctx, execID, container.ExecAttachOptions{
		Tty: true,
	})
	if err != nil {
		return 0, fmt.Errorf("exec attach: %w", err)
	}
	defer attach.Close()

	// Put the local terminal in raw mode so key events reach the shell.
	inFd, isTerm := term.GetFdInfo(os.Stdin)
	if isTerm {
		oldState, err := term.MakeRaw(inFd)
		if err != nil {
			return 0, fmt.Errorf("make raw: %w", err)
		}
		defer term.RestoreTerminal(inFd, oldState)

		if ws, err := term.GetWinsize(inFd); err == nil {
			_ = dc.client.ContainerExecResize(ctx, execID, container.ResizeOptions{
				Height: uint(ws.Height),
				Width:  uint(ws.Width),
			})
		}

		// Watch for future resizes (SIGWINCH).
		resizeCh := make(chan os.Signal, 1)
		signal.Notify(resizeCh, syscall.SIGWINCH)
		defer signal.Stop(resizeCh)
		go func() {
			for range resizeCh {
				if ws, err := term.GetWinsize(inFd); err == nil {
					_ = dc.client.ContainerExecResize(context.Background(), execID, container.ResizeOptions{
						Height: uint(ws.Height),
						Width:  uint(ws.Width),
					})
				}
			}
		}()
	}

	// stdin → exec
	go func() {
		_, _ = io.Copy(attach.Conn, os.Stdin)
		_ = attach.CloseWrite()
	}()

	// exec → stdout (TTY=true: merged)
	if _, err := io.Copy(os.Stdout, attach.Reader); err != nil && ctx.Err() == nil {
		return 0, fmt.Errorf("exec stream: %w", err)
	}

	inspect, err := dc.client.ContainerExecInspect(ctx, execID)
	if err != nil {
		return 0, fmt.Errorf("exec inspect: %w", err)
	}
	return inspect.ExitCode, nil
}
