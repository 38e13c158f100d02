package main

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"dockside/pkg/config"
	"dockside/pkg/engine"
	"dockside/pkg/resources"
	"dockside/pkg/store"
)

var core *store.Store

func main() {
	config.Load()
	if config.Model.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("Verbose is on")
	}

	// A dead socket degrades the store rather than failing startup
	if config.Model.MockEngine {
		logrus.Info("Using seeded mock engine")
		core = store.New(engine.NewMock(), config.Model.DockerHost, config.Model.Timeout)
	} else {
		core = store.Open(config.Model.DockerHost, config.Model.Timeout)
	}
	defer core.Close()

	core.RefreshAll()

	if config.Model.PollFreq > 0 {
		go pollLoop(config.Model.PollFreq)
	}

	http.HandleFunc("/", StatusHandler)
	http.HandleFunc("/containers/", ContainerActionHandler)
	http.HandleFunc("/ping", PingHandler)

	logrus.Infof("Listening on %s...", config.Model.Listen)
	http.ListenAndServe(config.Model.Listen, nil)
}

func pollLoop(freq time.Duration) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for range ticker.C {
		core.RefreshAll()
	}
}

func StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "Not Found")
		return
	}

	snap := core.Snapshot()
	running, stopped := resources.CountByState(snap.Containers)
	if err := statusTemplate.Execute(w, StatusPageModel{
		Snapshot: snap,
		Running:  running,
		Stopped:  stopped,
	}); err != nil {
		logrus.Error(err)
	}
}

// ContainerActionHandler serves POST /containers/{id}/{start|stop}. It waits
// for the mutation (and its follow-up refresh) to settle before redirecting,
// so the reloaded page shows the authoritative state.
func ContainerActionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/containers/"), "/"), "/")
	if len(parts) != 2 || parts[0] == "" {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "not found")
		return
	}

	var target resources.State
	switch parts[1] {
	case "start":
		target = resources.Running
	case "stop":
		target = resources.Stopped
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, "not found")
		return
	}

	<-core.SetContainerState(parts[0], target)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	<-core.TestConnection()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
