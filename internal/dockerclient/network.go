package dockerclient

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"

	"github.com/nourabuild/meetxctl/internal/logs"
)

// NetworkInfo is the subset of network state the CLI renders.
type NetworkInfo struct {
	ID     string
	Name   string
	Driver string
	Scope  string
}

type NetworkManager interface {
	ListNetworks(ctx context.Context) ([]NetworkInfo, error)
	CreateNetwork(ctx context.Context, name string) (NetworkInfo, error)
	InspectNetwork(ctx context.Context, name string) (NetworkInfo, error)
	PruneNetworks(ctx context.Context) ([]string, error)
}

func (dc *dockerClient) ListNetworks(ctx context.Context) ([]NetworkInfo, error) {
	summaries, err := dc.client.NetworkList(ctx, network.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("network list: %w", err)
	}

	out := make([]NetworkInfo, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, NetworkInfo{
			ID:     s.ID,
			Name:   s.Name,
			Driver: s.Driver,
			Scope:  s.Scope,
		})
	}
	return out, nil
}

// CreateNetwork creates a bridge network. The daemon does not reject
// duplicate names, so callers enforcing uniqueness check ListNetworks first.
func (dc *dockerClient) CreateNetwork(ctx context.Context, name string) (NetworkInfo, error) {
	created, err := dc.client.NetworkCreate(ctx, name, network.CreateOptions{
		Driver: "bridge",
		Labels: map[string]string{"meetxctl": "1"},
	})
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("network create %s: %w", name, err)
	}

	logs.Debugf("created network %s (%s)", name, created.ID)
	return NetworkInfo{ID: created.ID, Name: name, Driver: "bridge", Scope: "local"}, nil
}

func (dc *dockerClient) InspectNetwork(ctx context.Context, name string) (NetworkInfo, error) {
	resp, err := dc.client.NetworkInspect(ctx, name, network.InspectOptions{})
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("network inspect %s: %w", name, err)
	}
	return NetworkInfo{
		ID:     resp.ID,
		Name:   resp.Name,
		Driver: resp.Driver,
		Scope:  resp.Scope,
	}, nil
}

func (dc *dockerClient) PruneNetworks(ctx context.Context) ([]string, error) {
	report, err := dc.client.NetworksPrune(ctx, filters.NewArgs())
	if err != nil {
		return nil, fmt.Errorf("network prune: %w", err)
	}
	return report.NetworksDeleted, nil
}
