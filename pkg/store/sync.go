package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"dockside/pkg/resources"
)

// Message set when an operation runs without an engine connection.
const errServiceUnavailable = "service not available"

// Every async entry point returns a handle that closes when the operation,
// including any follow-up refresh, has fully settled. Callers that only want
// fire-and-forget drop it; tests await it instead of sleeping.

// RefreshAll triggers independent refreshes of all three resource kinds.
// The kinds complete on their own schedules; the handle closes when the last
// one does.
func (s *Store) RefreshAll() <-chan struct{} {
	cts := s.RefreshContainers()
	imgs := s.RefreshImages()
	vols := s.RefreshVolumes()

	done := make(chan struct{})
	go func() {
		<-cts
		<-imgs
		<-vols
		close(done)
	}()
	return done
}

// RefreshContainers replaces the containers list wholesale from the engine.
// The loading flag tracks only this refresh; it flips on before dispatch so
// a reader sees it without racing the goroutine.
func (s *Store) RefreshContainers() <-chan struct{} {
	if s.engine == nil {
		s.setError(errServiceUnavailable)
		return closedTask()
	}

	s.setLoading(true)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer s.setLoading(false)

		ctx, cancel := s.callCtx()
		defer cancel()

		list, err := s.engine.ListContainers(ctx)
		if err != nil {
			s.fail("Failed to list containers", err)
			return
		}
		s.commit(func() {
			s.containers = list
		})
	}()
	return done
}

// RefreshImages replaces the images list wholesale from the engine.
func (s *Store) RefreshImages() <-chan struct{} {
	if s.engine == nil {
		s.setError(errServiceUnavailable)
		return closedTask()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		ctx, cancel := s.callCtx()
		defer cancel()

		list, err := s.engine.ListImages(ctx)
		if err != nil {
			s.fail("Failed to list images", err)
			return
		}
		s.commit(func() {
			s.images = list
		})
	}()
	return done
}

// RefreshVolumes replaces the volumes list wholesale from the engine.
func (s *Store) RefreshVolumes() <-chan struct{} {
	if s.engine == nil {
		s.setError(errServiceUnavailable)
		return closedTask()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		ctx, cancel := s.callCtx()
		defer cancel()

		list, err := s.engine.ListVolumes(ctx)
		if err != nil {
			s.fail("Failed to list volumes", err)
			return
		}
		s.commit(func() {
			s.volumes = list
		})
	}()
	return done
}

// StartContainer asks the engine to start id, then pulls the authoritative
// post-mutation state with a containers refresh. Local state is never
// flipped optimistically.
func (s *Store) StartContainer(id string) <-chan struct{} {
	return s.mutateContainer(id, resources.Running)
}

// StopContainer is the stop counterpart of StartContainer.
func (s *Store) StopContainer(id string) <-chan struct{} {
	return s.mutateContainer(id, resources.Stopped)
}

// SetContainerState dispatches to start or stop based on the state the user
// asked for. This is the single mutation entry point the presentation layer
// calls.
func (s *Store) SetContainerState(id string, target resources.State) <-chan struct{} {
	if target == resources.Running {
		return s.StartContainer(id)
	}
	return s.StopContainer(id)
}

func (s *Store) mutateContainer(id string, target resources.State) <-chan struct{} {
	if s.engine == nil {
		s.setError(errServiceUnavailable)
		return closedTask()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		ctx, cancel := s.callCtx()
		var err error
		var verb, acted string
		if target == resources.Running {
			verb, acted = "start", "Started"
			err = s.engine.StartContainer(ctx, id)
		} else {
			verb, acted = "stop", "Stopped"
			err = s.engine.StopContainer(ctx, id)
		}
		cancel()

		if err != nil {
			// last-action stays as-is; the mutation never happened
			s.fail(fmt.Sprintf("Failed to %s container %s", verb, id), err)
			return
		}

		s.commit(func() {
			s.lastAction = fmt.Sprintf("%s container %s", acted, id)
		})
		logrus.Infof("%s container %s", acted, id)

		// The refresh is sequenced strictly after the mutation; the handle
		// closes only once the refreshed list has landed.
		<-s.RefreshContainers()
	}()
	return done
}

// TestConnection pings the engine and records the outcome as a user-visible
// action.
func (s *Store) TestConnection() <-chan struct{} {
	if s.engine == nil {
		s.setError(errServiceUnavailable)
		return closedTask()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		ctx, cancel := s.callCtx()
		defer cancel()

		if err := s.engine.Ping(ctx); err != nil {
			s.fail("Engine ping failed", err)
			return
		}
		s.commit(func() {
			s.lastAction = "Engine connection OK"
		})
	}()
	return done
}

// commit applies a successful result and clears the error field, since the
// most recent engine interaction evidently worked.
func (s *Store) commit(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply()
	s.lastErr = ""
}

func (s *Store) fail(what string, err error) {
	msg := fmt.Sprintf("%s: %v", what, err)
	logrus.Warn(msg)
	s.setError(msg)
}

func closedTask() <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}
