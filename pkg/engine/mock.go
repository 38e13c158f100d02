package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"dockside/pkg/resources"
)

// ErrNoSuchContainer is returned by the mock when asked to mutate an
// identifier it has never seen.
var ErrNoSuchContainer = errors.New("no such container")

// Mock is an in-memory engine for demo runs and tests. Unlike the live
// adapter it owns its ground truth: start and stop mutate the seeded
// records, so the next refresh observes the change the same way it would
// against a real engine.
type Mock struct {
	mu         sync.Mutex
	containers []resources.Container
	images     []resources.Image
	volumes    []resources.Volume
}

// NewMock seeds a mock engine with a plausible local workload.
func NewMock() *Mock {
	return &Mock{
		containers: []resources.Container{
			{ID: "0cd84aa31f6e", Name: "cache", Image: "redis:7.2", Status: "Up 2 days", Ports: "6379:6379", State: resources.Running},
			{ID: "4f91c2d7a8b0", Name: "web-proxy", Image: "nginx:1.27", Status: "Up 3 hours", Ports: "443:8443, 80:8080", State: resources.Running},
			{ID: "b7a1e90c55d2", Name: "worker", Image: "queue-worker:local", Status: "Exited (0) 26 minutes ago", Ports: resources.NoneValue, State: resources.Stopped},
		},
		images: []resources.Image{
			{ID: "3f8a5b2c91d4", Repository: "nginx", Tag: "1.27", Size: "187.8MB"},
			{ID: "77c0de1b4a92", Repository: "queue-worker", Tag: "local", Size: "489.5MB"},
			{ID: "c51e02f9d6ab", Repository: "redis", Tag: "7.2", Size: "112.3MB"},
		},
		volumes: []resources.Volume{
			{Name: "cache-data", Driver: "local", Mountpoint: "/var/lib/docker/volumes/cache-data/_data", Size: resources.UnknownValue},
			{Name: "worker-spool", Driver: "local", Mountpoint: "/var/lib/docker/volumes/worker-spool/_data", Size: resources.UnknownValue},
		},
	}
}

func (m *Mock) ListContainers(ctx context.Context) ([]resources.Container, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]resources.Container(nil), m.containers...), nil
}

func (m *Mock) ListImages(ctx context.Context) ([]resources.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]resources.Image(nil), m.images...), nil
}

func (m *Mock) ListVolumes(ctx context.Context) ([]resources.Volume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]resources.Volume(nil), m.volumes...), nil
}

func (m *Mock) StartContainer(ctx context.Context, id string) error {
	return m.setState(id, resources.Running, "Up less than a minute")
}

func (m *Mock) StopContainer(ctx context.Context, id string) error {
	return m.setState(id, resources.Stopped, "Exited (0) just now")
}

func (m *Mock) setState(id string, state resources.State, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.containers {
		if m.containers[i].ID == id {
			m.containers[i].State = state
			m.containers[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSuchContainer, id)
}

func (m *Mock) Ping(ctx context.Context) error {
	return nil
}

func (m *Mock) Close() error {
	return nil
}
