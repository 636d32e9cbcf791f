package dockerclient

import (
	"context"
	"log/slog"
	"os"

	"github.com/docker/go-sdk/client"
)

type dockerClient struct {
	client client.SDKClient
}

type DockerClient interface {
	ImageBuilder
	ImagePusher
	NetworkManager
	ContainerExecutor
	ImageExists(context.Context, string) bool
}

var defaultClient *dockerClient

func NewDockerClient() (*dockerClient, error) {
	client, err := client.New(
		context.Background(),
		client.WithLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))),
	)
	if err != nil {
		return nil, err
	}

	return &dockerClient{
		client: client,
	}, nil
}

func DefaultDockerClient() (DockerClient, error) {
	if defaultClient == nil {
		var err error
		defaultClient, err = NewDockerClient()
		if err != nil {
			return nil, err
		}
	}
	return defaultClient, nil
}

func (dc *dockerClient) ImageExists(ctx context.Context, imageRef string) bool {
	_, err := dc.client.ImageInspect(ctx, imageRef)

	return err == nil
}
