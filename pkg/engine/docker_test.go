package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	volumetypes "github.com/docker/docker/api/types/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dockside/pkg/resources"
)

type fakeHost struct {
	containers []types.Container
	images     []types.ImageSummary
	volumes    volumetypes.ListResponse
	err        error

	lastListAll bool
	started     []string
	stopped     []string
	pinged      bool
	closed      bool
}

func (f *fakeHost) ContainerList(ctx context.Context, opts types.ContainerListOptions) ([]types.Container, error) {
	f.lastListAll = opts.All
	return f.containers, f.err
}

func (f *fakeHost) ImageList(ctx context.Context, opts types.ImageListOptions) ([]types.ImageSummary, error) {
	return f.images, f.err
}

func (f *fakeHost) VolumeList(ctx context.Context, opts volumetypes.ListOptions) (volumetypes.ListResponse, error) {
	return f.volumes, f.err
}

func (f *fakeHost) ContainerStart(ctx context.Context, id string, opts types.ContainerStartOptions) error {
	f.started = append(f.started, id)
	return f.err
}

func (f *fakeHost) ContainerStop(ctx context.Context, id string, opts container.StopOptions) error {
	f.stopped = append(f.stopped, id)
	return f.err
}

func (f *fakeHost) Ping(ctx context.Context) (types.Ping, error) {
	f.pinged = true
	return types.Ping{}, f.err
}

func (f *fakeHost) Close() error {
	f.closed = true
	return nil
}

func TestDockerListContainers(t *testing.T) {
	host := &fakeHost{
		containers: []types.Container{
			{ID: "b7a1e90c55d2ff00", Names: []string{"/worker"}, Image: "queue-worker:local", State: "exited"},
			{ID: "0cd84aa31f6eff00", Names: []string{"/cache"}, Image: "redis:7.2", State: "running"},
		},
	}
	d := NewDocker(host)

	list, err := d.ListContainers(context.Background())
	require.NoError(t, err)
	assert.True(t, host.lastListAll, "stopped containers belong in the view too")
	require.Len(t, list, 2)
	assert.Equal(t, "cache", list[0].Name)
	assert.Equal(t, "0cd84aa31f6e", list[0].ID)
	assert.Equal(t, resources.Running, list[0].State)
	assert.Equal(t, resources.Stopped, list[1].State)
}

func TestDockerListErrorsPassThrough(t *testing.T) {
	boom := errors.New("socket gone")
	d := NewDocker(&fakeHost{err: boom})
	ctx := context.Background()

	_, err := d.ListContainers(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = d.ListImages(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = d.ListVolumes(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestDockerListVolumes(t *testing.T) {
	d := NewDocker(&fakeHost{
		volumes: volumetypes.ListResponse{
			Volumes:  []*volumetypes.Volume{{Name: "cache-data", Driver: "local"}},
			Warnings: []string{"some engine warning"},
		},
	})

	list, err := d.ListVolumes(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cache-data", list[0].Name)
	assert.Equal(t, resources.UnknownValue, list[0].Size)
}

func TestDockerStartStop(t *testing.T) {
	host := &fakeHost{}
	d := NewDocker(host)
	ctx := context.Background()

	require.NoError(t, d.StartContainer(ctx, "c1"))
	require.NoError(t, d.StopContainer(ctx, "c2"))
	assert.Equal(t, []string{"c1"}, host.started)
	assert.Equal(t, []string{"c2"}, host.stopped)
}

func TestDockerPingAndClose(t *testing.T) {
	host := &fakeHost{}
	d := NewDocker(host)

	assert.NoError(t, d.Ping(context.Background()))
	assert.True(t, host.pinged)
	assert.NoError(t, d.Close())
	assert.True(t, host.closed)
}
