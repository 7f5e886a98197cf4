package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// lineWriter renders the vertex stream as plain log lines. The recorder syncs
// a vertex on every state change, so start and completion are each announced
// exactly once per vertex no matter how many updates carry it.
type lineWriter struct {
	logger ports.Logger

	mu       sync.Mutex
	names    map[string]string
	started  map[string]bool
	finished map[string]bool
}

func newLineWriter(logger ports.Logger) *lineWriter {
	return &lineWriter{
		logger:   logger,
		names:    make(map[string]string),
		started:  make(map[string]bool),
		finished: make(map[string]bool),
	}
}

func (w *lineWriter) WriteStatus(status *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range status.Vertexes {
		w.names[v.Id] = v.Name

		if v.Started != nil && !w.started[v.Id] {
			w.started[v.Id] = true
			w.logger.Info(v.Name)
		}

		if v.Completed == nil || w.finished[v.Id] {
			continue
		}
		w.finished[v.Id] = true

		switch {
		case v.Error != nil:
			w.logger.Error(zerr.With(zerr.New(*v.Error), "step", v.Name))
		case v.Cached:
			w.logger.Info(v.Name + " (cached)")
		}
	}

	for _, l := range status.Logs {
		prefix := w.names[l.Vertex]
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if line == "" {
				continue
			}
			w.logger.Info(prefix + ": " + line)
		}
	}

	return nil
}

func (w *lineWriter) Close() error {
	return nil
}
