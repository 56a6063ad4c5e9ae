// Package trace records each task's ordered progress stream as NDJSON, one
// line per event, for export over HTTP and offline replay.
package trace

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/delver-project/delver/pkg/models"
)

// maxRetainedTraces caps how many finished task traces stay in memory.
// Active tasks are never evicted.
const maxRetainedTraces = 512

type taskTrace struct {
	lines    [][]byte
	lastSeq  uint64
	finished bool
	file     *os.File
}

// Recorder keeps an in-memory NDJSON buffer per task and, when an artifacts
// directory is configured, mirrors each line to <dir>/<task_id>.ndjson.
type Recorder struct {
	mu            sync.Mutex
	dir           string
	traces        map[string]*taskTrace
	finishedOrder []string
}

// NewRecorder builds a recorder. An empty dir disables the file mirror.
func NewRecorder(dir string) *Recorder {
	return &Recorder{
		dir:    dir,
		traces: make(map[string]*taskTrace),
	}
}

// Record appends one event to the task's trace. Events arrive in publication
// order from the single orchestrator goroutine that owns the task.
func (r *Recorder) Record(event models.ProgressEvent) {
	line, err := json.Marshal(event)
	if err != nil {
		slog.Warn("Failed to encode trace event", "task_id", event.TaskID, "error", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tt := r.traces[event.TaskID]
	if tt == nil {
		tt = &taskTrace{}
		r.traces[event.TaskID] = tt
		if r.dir != "" {
			tt.file = r.openMirror(event.TaskID)
		}
	}
	if tt.finished {
		return
	}

	tt.lines = append(tt.lines, line)
	tt.lastSeq = event.Seq
	if tt.file != nil {
		if _, err := tt.file.Write(append(line, '\n')); err != nil {
			slog.Warn("Failed to mirror trace line", "task_id", event.TaskID, "error", err)
		}
	}

	if event.Kind.IsTerminal() {
		tt.finished = true
		if tt.file != nil {
			_ = tt.file.Close()
			tt.file = nil
		}
		r.finishedOrder = append(r.finishedOrder, event.TaskID)
		r.evictLocked()
	}
}

// Export returns the task's NDJSON buffer. ok is false for unknown tasks.
func (r *Recorder) Export(taskID string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tt := r.traces[taskID]
	if tt == nil {
		return nil, false
	}

	size := 0
	for _, line := range tt.lines {
		size += len(line) + 1
	}
	out := make([]byte, 0, size)
	for _, line := range tt.lines {
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out, true
}

// EventCount reports how many events the task's trace holds.
func (r *Recorder) EventCount(taskID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	tt := r.traces[taskID]
	if tt == nil {
		return 0
	}
	return len(tt.lines)
}

// Close closes any open mirror files. Called on shutdown.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tt := range r.traces {
		if tt.file != nil {
			_ = tt.file.Close()
			tt.file = nil
		}
	}
}

func (r *Recorder) openMirror(taskID string) *os.File {
	if strings.ContainsAny(taskID, `/\`) {
		slog.Warn("Refusing trace mirror for unsafe task id", "task_id", taskID)
		return nil
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		slog.Warn("Failed to create artifacts directory", "dir", r.dir, "error", err)
		return nil
	}
	path := filepath.Join(r.dir, taskID+".ndjson")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("Failed to open trace mirror", "path", path, "error", err)
		return nil
	}
	return f
}

func (r *Recorder) evictLocked() {
	for len(r.finishedOrder) > maxRetainedTraces {
		oldest := r.finishedOrder[0]
		r.finishedOrder = r.finishedOrder[1:]
		delete(r.traces, oldest)
	}
}
