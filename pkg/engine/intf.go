package engine

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	volumetypes "github.com/docker/docker/api/types/volume"

	"dockside/pkg/resources"
)

// Client is everything the state layer needs from a container engine. Each
// call is independently failable; the caller decides what a failure means.
type Client interface {
	ListContainers(ctx context.Context) ([]resources.Container, error)
	ListImages(ctx context.Context) ([]resources.Image, error)
	ListVolumes(ctx context.Context) ([]resources.Volume, error)

	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error

	Ping(ctx context.Context) error

	Close() error
}

// Host is the subset of the docker SDK client the live adapter uses
type Host interface {
	ContainerList(ctx context.Context, opts types.ContainerListOptions) ([]types.Container, error)
	ImageList(ctx context.Context, opts types.ImageListOptions) ([]types.ImageSummary, error)
	VolumeList(ctx context.Context, opts volumetypes.ListOptions) (volumetypes.ListResponse, error)

	ContainerStart(ctx context.Context, id string, opts types.ContainerStartOptions) error
	ContainerStop(ctx context.Context, id string, opts container.StopOptions) error

	Ping(ctx context.Context) (types.Ping, error)

	Close() error
}
