package resources

import (
	"fmt"
	"sort"
	"strings"

	"github.com/docker/docker/api/types"
)

// State is the lifecycle state a container row displays. The engine owns the
// ground truth; this is only the two-way split the dashboard acts on.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "Running"
	}
	return "Stopped"
}

// StateFromEngine maps the engine's state string. Only "running" counts as
// running; exited, created, paused, restarting and absent all display as
// stopped.
func StateFromEngine(state string) State {
	if state == "running" {
		return Running
	}
	return Stopped
}

// NoneValue fills fields the engine has no data for (untagged images,
// containers with no published ports).
const NoneValue = "none"

// char-len capped display ID
const shortIDLen = 12

// Container is a single row of the containers view.
type Container struct {
	ID     string
	Name   string
	Image  string
	Status string
	Ports  string
	State  State
}

// FromContainer flattens an engine container into a display record.
func FromContainer(ct types.Container) Container {
	var name string
	if len(ct.Names) > 0 {
		name = strings.TrimPrefix(ct.Names[0], "/")
	} else {
		name = ct.Image
	}

	return Container{
		ID:     ShortID(ct.ID),
		Name:   name,
		Image:  ct.Image,
		Status: ct.Status,
		Ports:  formatPorts(ct.Ports),
		State:  StateFromEngine(ct.State),
	}
}

// FromContainerList maps and sorts a list result for display.
func FromContainerList(cts []types.Container) []Container {
	ret := make([]Container, len(cts))
	for i, c := range cts {
		ret[i] = FromContainer(c)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Name != ret[j].Name {
			return ret[i].Name < ret[j].Name
		}
		return ret[i].ID < ret[j].ID
	})
	return ret
}

// ShortID caps an engine identifier to display length, dropping any
// content-address prefix first.
func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// CountByState tallies a container list for the dashboard metric cards.
func CountByState(cts []Container) (running, stopped int) {
	for _, c := range cts {
		if c.State == Running {
			running++
		} else {
			stopped++
		}
	}
	return
}

func formatPorts(ports []types.Port) string {
	if len(ports) == 0 {
		return NoneValue
	}

	strs := make([]string, 0, len(ports))
	seen := make(map[string]bool)
	for _, p := range ports {
		var s string
		if p.PublicPort > 0 {
			s = fmt.Sprintf("%d:%d", p.PublicPort, p.PrivatePort)
		} else {
			s = fmt.Sprintf("%d", p.PrivatePort)
		}
		if !seen[s] {
			strs = append(strs, s)
			seen[s] = true
		}
	}
	return strings.Join(strs, ", ")
}
