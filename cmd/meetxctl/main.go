package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	meetxctl "github.com/nourabuild/meetxctl/internal/apps/meetxctl/cmds"
	"github.com/nourabuild/meetxctl/internal/execx"
	"github.com/nourabuild/meetxctl/internal/logs"
)

func main() {
	logs.SetComponent(detectComponent("meetxctl"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := meetxctl.Execute(ctx)
	if err != nil {
		logs.Errorf("%v", err)
	}

	os.Exit(execx.ExitCodeOf(err))
}

func detectComponent(base string) string {
	if len(os.Args) > 1 && len(os.Args[1]) > 0 && os.Args[1][0] != '-' {
		return base + ":" + strings.Join(os.Args[1:], " ")
	}
	return base
}
