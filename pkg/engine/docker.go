package engine

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	volumetypes "github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/sirupsen/logrus"

	"dockside/pkg/resources"
)

// Docker talks to a live engine through the SDK client.
type Docker struct {
	host Host
}

// NewDocker wraps an already-connected host. Mostly useful for tests;
// production code goes through Connect.
func NewDocker(host Host) *Docker {
	return &Docker{host: host}
}

// Connect dials the engine at hostAddr and probes it once, so a dead socket
// surfaces at construction instead of on the first refresh. Callers treat a
// returned error as degraded mode, not a fatal condition.
func Connect(hostAddr string) (*Docker, error) {
	cli, err := client.NewClientWithOpts(client.WithHost(hostAddr), client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create engine client: %w", err)
	}

	info, err := cli.Info(context.Background())
	if err != nil {
		cli.Close()
		return nil, fmt.Errorf("probe engine at %s: %w", hostAddr, err)
	}
	logrus.Infof("Connected to engine %s (v%s)", info.Name, info.ServerVersion)

	return &Docker{host: cli}, nil
}

func (d *Docker) ListContainers(ctx context.Context) ([]resources.Container, error) {
	cts, err := d.host.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, err
	}
	return resources.FromContainerList(cts), nil
}

func (d *Docker) ListImages(ctx context.Context) ([]resources.Image, error) {
	imgs, err := d.host.ImageList(ctx, types.ImageListOptions{})
	if err != nil {
		return nil, err
	}
	return resources.FromImageList(imgs), nil
}

func (d *Docker) ListVolumes(ctx context.Context) ([]resources.Volume, error) {
	resp, err := d.host.VolumeList(ctx, volumetypes.ListOptions{})
	if err != nil {
		return nil, err
	}
	for _, warn := range resp.Warnings {
		logrus.Warnf("Engine volume list warning: %s", warn)
	}
	return resources.FromVolumeList(resp.Volumes), nil
}

func (d *Docker) StartContainer(ctx context.Context, id string) error {
	return d.host.ContainerStart(ctx, id, types.ContainerStartOptions{})
}

func (d *Docker) StopContainer(ctx context.Context, id string) error {
	return d.host.ContainerStop(ctx, id, container.StopOptions{})
}

func (d *Docker) Ping(ctx context.Context) error {
	_, err := d.host.Ping(ctx)
	return err
}

func (d *Docker) Close() error {
	return d.host.Close()
}
