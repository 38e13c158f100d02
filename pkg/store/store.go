// Package store owns the canonical in-memory view of engine resources and
// reconciles asynchronous fetch/mutate results into it. The presentation
// layer only ever reads point-in-time copies and calls the entry points in
// sync.go; nothing in here blocks a caller on engine I/O.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"dockside/pkg/engine"
	"dockside/pkg/resources"
)

const defaultTimeout = 30 * time.Second

// Store holds the current resource snapshot plus the transient fields the
// dashboard surfaces. All fields are whole-value replaced under one mutex;
// there is deliberately no cross-field transaction, the UI tolerates
// momentarily mixed combinations.
type Store struct {
	mu      sync.RWMutex
	engine  engine.Client // nil means degraded: no connection at construction
	timeout time.Duration

	host       string
	containers []resources.Container
	images     []resources.Image
	volumes    []resources.Volume
	lastAction string // empty = no action yet
	lastErr    string // empty = no error; most recent wins
	loading    bool   // containers refresh only
}

// New builds a store around an engine client. Pass a nil client when the
// connection could not be established; the store then degrades every
// operation to an immediate error instead of panicking.
func New(eng engine.Client, host string, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Store{
		engine:  eng,
		timeout: timeout,
		host:    host,
	}
}

// Open connects to the engine at host and wraps it in a store. A failed
// connection is not fatal: the returned store is degraded and every
// operation reports the unavailable error until the process restarts.
func Open(host string, timeout time.Duration) *Store {
	var cli engine.Client
	if eng, err := engine.Connect(host); err != nil {
		logrus.Warnf("Unable to connect to engine, store is degraded: %v", err)
	} else {
		cli = eng
	}
	return New(cli, host, timeout)
}

// Close releases the engine connection, if one was ever established.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return nil
	}
	return s.engine.Close()
}

// Snapshot is a point-in-time copy of everything the presentation layer
// reads. Slices are cloned so a held snapshot never observes a later commit.
type Snapshot struct {
	Containers []resources.Container
	Images     []resources.Image
	Volumes    []resources.Volume
	Host       string
	LastAction string
	LastError  string
	Loading    bool
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Containers: cloneSlice(s.containers),
		Images:     cloneSlice(s.images),
		Volumes:    cloneSlice(s.volumes),
		Host:       s.host,
		LastAction: s.lastAction,
		LastError:  s.lastErr,
		Loading:    s.loading,
	}
}

func (s *Store) Containers() []resources.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.containers)
}

func (s *Store) Images() []resources.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.images)
}

func (s *Store) Volumes() []resources.Volume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.volumes)
}

func (s *Store) LastAction() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAction
}

func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Host() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

// SetHost updates the displayed endpoint only. The live connection is
// established once at construction; there is no reconnect-on-change.
func (s *Store) SetHost(host string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.host = host
}

// RecordAction surfaces a UI-only action that has no engine call behind it.
// It never touches the error field or the snapshot.
func (s *Store) RecordAction(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAction = message
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func cloneSlice[T any](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
