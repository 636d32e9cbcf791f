package dockerclient

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/build"
	sdkimage "github.com/docker/go-sdk/image"
	"github.com/moby/go-archive"

	"github.com/nourabuild/meetxctl/internal/logs"
)

// contextExcludes keeps host-only noise out of the build context.
var contextExcludes = []string{
	".git",
	"__pycache__",
	"**/__pycache__",
	"*.pyc",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	".venv",
}

type ImageBuilder interface {
	// BuildImage builds the project image from contextDir using its
	// Dockerfile and applies every tag to the single resulting build.
	BuildImage(ctx context.Context, contextDir string, tags []string) error
}

func (dc *dockerClient) BuildImage(ctx context.Context, contextDir string, tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("image build: at least one tag is required")
	}

	buildContext, err := archive.TarWithOptions(contextDir, &archive.TarOptions{
		ExcludePatterns: contextExcludes,
	})
	if err != nil {
		return fmt.Errorf("tar build context: %w", err)
	}
	defer buildContext.Close()

	primary := tags[0]
	logs.Infof("building %s from %s", primary, contextDir)

	builtTag, err := sdkimage.Build(
		ctx,
		buildContext,
		primary,
		sdkimage.WithBuildClient(dc.client),
		sdkimage.WithBuildOptions(build.ImageBuildOptions{
			Dockerfile: "Dockerfile",
			Remove:     true, // remove intermediate containers
		}),
	)
	if err != nil {
		return fmt.Errorf("image build: %w", err)
	}

	// Remaining tags alias the same build, never a second one.
	for _, tag := range tags[1:] {
		if err := dc.client.ImageTag(ctx, builtTag, tag); err != nil {
			return fmt.Errorf("image tag %s: %w", tag, err)
		}
		logs.Debugf("tagged %s as %s", builtTag, tag)
	}

	return nil
}
