package dockerclient

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/moby/term"

	appconfig "github.com/nourabuild/meetxctl/internal/apps/meetxctl/config"
	"github.com/nourabuild/meetxctl/internal/logs"
)

type ImagePusher interface {
	// PushImage pushes one registry-qualified reference, rendering the
	// daemon's progress stream to the terminal.
	PushImage(ctx context.Context, ref string) error
}

func (dc *dockerClient) PushImage(ctx context.Context, ref string) error {
	auth, err := encodeRegistryAuth()
	if err != nil {
		return err
	}

	logs.Infof("pushing %s", ref)
	respBody, err := dc.client.ImagePush(ctx, ref, image.PushOptions{
		RegistryAuth: auth,
	})
	if err != nil {
		return fmt.Errorf("image push %s: %w", ref, err)
	}
	defer respBody.Close()

	outFd, isTerm := term.GetFdInfo(os.Stdout)
	if err := jsonmessage.DisplayJSONMessagesStream(respBody, os.Stdout, outFd, isTerm, nil); err != nil {
		return fmt.Errorf("image push %s: %w", ref, err)
	}

	return nil
}

// encodeRegistryAuth builds the X-Registry-Auth header payload from the
// configured credentials. Without credentials the daemon falls back to its
// own login state.
func encodeRegistryAuth() (string, error) {
	username, password := appconfig.RegistryCredentials()
	if username == "" {
		return "", nil
	}

	auth, err := registry.EncodeAuthConfig(registry.AuthConfig{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("encode registry auth: %w", err)
	}
	return auth, nil
}
