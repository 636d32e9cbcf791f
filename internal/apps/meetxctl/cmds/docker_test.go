// Tests in this file drive the daemon-backed commands against a fake client.
package cmds

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/nourabuild/meetxctl/internal/dockerclient"
)

// fakeDocker records every daemon call so tests can assert what a command
// asked for. Zero value behaves like a healthy daemon with no state.
type fakeDocker struct {
	networks     []dockerclient.NetworkInfo
	imagePresent bool

	builtDirs   []string
	builtTags   [][]string
	pushed      []string
	existsAsked []string
	created     []string
}

func (f *fakeDocker) BuildImage(_ context.Context, contextDir string, tags []string) error {
	f.builtDirs = append(f.builtDirs, contextDir)
	f.builtTags = append(f.builtTags, append([]string(nil), tags...))
	return nil
}

func (f *fakeDocker) PushImage(_ context.Context, ref string) error {
	f.pushed = append(f.pushed, ref)
	return nil
}

func (f *fakeDocker) ImageExists(_ context.Context, ref string) bool {
	f.existsAsked = append(f.existsAsked, ref)
	return f.imagePresent
}

func (f *fakeDocker) ListNetworks(context.Context) ([]dockerclient.NetworkInfo, error) {
	return f.networks, nil
}

func (f *fakeDocker) CreateNetwork(_ context.Context, name string) (dockerclient.NetworkInfo, error) {
	f.created = append(f.created, name)
	return dockerclient.NetworkInfo{ID: "f00dcafe1234", Name: name, Driver: "bridge", Scope: "local"}, nil
}

func (f *fakeDocker) InspectNetwork(_ context.Context, name string) (dockerclient.NetworkInfo, error) {
	return dockerclient.NetworkInfo{Name: name}, nil
}

func (f *fakeDocker) PruneNetworks(context.Context) ([]string, error) {
	return nil, nil
}

func (f *fakeDocker) FindComposeContainer(context.Context, string, string) (string, error) {
	return "deadbeef", nil
}

func (f *fakeDocker) ExecInteractive(context.Context, string, []string) (int, error) {
	return 0, nil
}

func (f *fakeDocker) provide() (dockerclient.DockerClient, error) {
	return f, nil
}

func chdirToProject(t *testing.T, version string) {
	t.Helper()

	dir := t.TempDir()
	pyproject := "[tool.poetry]\nname = \"meetx\"\nversion = \"" + version + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyproject), 0o644); err != nil {
		t.Fatalf("write pyproject: %v", err)
	}
	t.Chdir(dir)
}

func TestDockerPushBuildsOnceAndPushesBothTags(t *testing.T) {
	chdirToProject(t, "1.2.3")
	t.Setenv("MEETX_IMAGE_REPO", "registry.example.com/meetx-api")

	fake := &fakeDocker{}
	cmd := newDockerPushCmd(fake.provide)
	cmd.SetArgs([]string{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("docker-push failed: %v", err)
	}

	// One build carrying both tags; never a second build per tag.
	if len(fake.builtTags) != 1 {
		t.Fatalf("BuildImage called %d times, want 1", len(fake.builtTags))
	}
	wantTags := []string{
		"registry.example.com/meetx-api:1.2.3",
		"registry.example.com/meetx-api:latest",
	}
	if got := fake.builtTags[0]; len(got) != 2 || got[0] != wantTags[0] || got[1] != wantTags[1] {
		t.Fatalf("BuildImage tags = %v, want %v", got, wantTags)
	}
	if len(fake.pushed) != 2 || fake.pushed[0] != wantTags[0] || fake.pushed[1] != wantTags[1] {
		t.Fatalf("pushed %v, want %v", fake.pushed, wantTags)
	}
}

func TestDockerPushRebuildsOverExistingImage(t *testing.T) {
	chdirToProject(t, "0.4.0")
	t.Setenv("MEETX_IMAGE_REPO", "registry.example.com/meetx-api")

	fake := &fakeDocker{imagePresent: true}
	cmd := newDockerPushCmd(fake.provide)
	cmd.SetArgs([]string{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("docker-push failed: %v", err)
	}

	if len(fake.existsAsked) != 1 || fake.existsAsked[0] != "registry.example.com/meetx-api:0.4.0" {
		t.Fatalf("ImageExists asked for %v, want the version tag", fake.existsAsked)
	}
	// A stale local image never suppresses the rebuild.
	if len(fake.builtTags) != 1 {
		t.Fatalf("BuildImage called %d times, want 1", len(fake.builtTags))
	}
}

func networkCreateCmd(t *testing.T, fake *fakeDocker) *cobra.Command {
	t.Helper()

	for _, cmd := range newNetworkCmds(fake.provide) {
		if cmd.Name() == "network-create" {
			return cmd
		}
	}
	t.Fatal("network-create command not registered")
	return nil
}

func TestNetworkCreateFailsWhenNetworkExists(t *testing.T) {
	t.Parallel()

	fake := &fakeDocker{networks: []dockerclient.NetworkInfo{
		{ID: "abc123def456", Name: "meetx-network", Driver: "bridge", Scope: "local"},
	}}

	cmd := networkCreateCmd(t, fake)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("network-create = %v, want already-exists error", err)
	}
	if len(fake.created) != 0 {
		t.Fatalf("CreateNetwork called for %v, want no calls", fake.created)
	}
}

func TestNetworkCreateIgnoresPrefixMatches(t *testing.T) {
	t.Parallel()

	// A network whose name merely contains the requested one must not block it.
	fake := &fakeDocker{networks: []dockerclient.NetworkInfo{
		{ID: "abc123def456", Name: "meetx-network-tools"},
	}}

	cmd := networkCreateCmd(t, fake)
	cmd.SetArgs([]string{"network=meetx-network"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("network-create failed: %v", err)
	}
	if len(fake.created) != 1 || fake.created[0] != "meetx-network" {
		t.Fatalf("CreateNetwork called for %v, want [meetx-network]", fake.created)
	}
}
