package trace

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
)

func traceEvent(taskID string, seq uint64, kind models.EventKind, payload any) models.ProgressEvent {
	return models.ProgressEvent{
		TaskID:    taskID,
		Seq:       seq,
		Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second),
		Kind:      kind,
		Message:   string(kind),
		Payload:   payload,
	}
}

// recordCompletedRun writes a representative full task trace.
func recordCompletedRun(r *Recorder, taskID string) {
	r.Record(traceEvent(taskID, 1, models.EventStarted, models.StartedPayload{Query: "q", Kind: models.TaskKindDeep}))
	r.Record(traceEvent(taskID, 2, models.EventPlanning, models.PlanningPayload{SubTasks: 3}))
	r.Record(traceEvent(taskID, 3, models.EventIteration, models.IterationPayload{Iteration: 1, MaxIterations: 3}))
	r.Record(traceEvent(taskID, 4, models.EventEvidence, models.EvidencePayload{New: 4, Total: 4}))
	r.Record(traceEvent(taskID, 5, models.EventEvaluation, models.EvaluationPayload{Score: 0.62, Level: models.LevelPartial}))
	r.Record(traceEvent(taskID, 6, models.EventIteration, models.IterationPayload{Iteration: 2, MaxIterations: 3}))
	r.Record(traceEvent(taskID, 7, models.EventEvidence, models.EvidencePayload{New: 3, Total: 7}))
	r.Record(traceEvent(taskID, 8, models.EventEvaluation, models.EvaluationPayload{Score: 0.84, Level: models.LevelSubstantial}))
	r.Record(traceEvent(taskID, 9, models.EventReportGeneration, models.ReportGenerationPayload{EvidenceTotal: 7}))
	r.Record(traceEvent(taskID, 10, models.EventCompleted, models.CompletedPayload{Score: 0.84, EvidenceCount: 7, DurationMS: 1200}))
}

func TestRecorder_ExportNDJSON(t *testing.T) {
	r := NewRecorder("")
	recordCompletedRun(r, "task-1")

	out, ok := r.Export("task-1")
	require.True(t, ok)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], `"event_type":"started"`)
	assert.Contains(t, lines[9], `"event_type":"completed"`)
	assert.Equal(t, 10, r.EventCount("task-1"))
}

func TestRecorder_UnknownTask(t *testing.T) {
	r := NewRecorder("")
	_, ok := r.Export("nope")
	assert.False(t, ok)
	assert.Equal(t, 0, r.EventCount("nope"))
}

func TestRecorder_IgnoresEventsAfterTerminal(t *testing.T) {
	r := NewRecorder("")
	r.Record(traceEvent("task-1", 1, models.EventStarted, nil))
	r.Record(traceEvent("task-1", 2, models.EventFailed, models.FailedPayload{Reason: "cancelled"}))
	r.Record(traceEvent("task-1", 3, models.EventEvidence, nil))

	assert.Equal(t, 2, r.EventCount("task-1"))
}

func TestRecorder_FileMirror(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(dir)
	recordCompletedRun(r, "task-1")

	data, err := os.ReadFile(filepath.Join(dir, "task-1.ndjson"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 10)

	// Mirror matches the in-memory buffer byte for byte.
	mem, ok := r.Export("task-1")
	require.True(t, ok)
	assert.Equal(t, string(mem), string(data))
}

func TestRecorder_RefusesUnsafeTaskIDMirror(t *testing.T) {
	dir := t.TempDir()
	r := NewRecorder(dir)
	r.Record(traceEvent("../escape", 1, models.EventStarted, nil))

	_, err := os.Stat(filepath.Join(dir, "..", "escape.ndjson"))
	assert.True(t, os.IsNotExist(err))

	// The in-memory buffer still records the event.
	assert.Equal(t, 1, r.EventCount("../escape"))
}

func TestReplay_ReconstructsTerminalState(t *testing.T) {
	r := NewRecorder("")
	recordCompletedRun(r, "task-1")
	out, ok := r.Export("task-1")
	require.True(t, ok)

	sum, err := Replay(bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "task-1", sum.TaskID)
	assert.Equal(t, models.TaskStatusCompleted, sum.Status)
	assert.Equal(t, 2, sum.Iterations)
	assert.Equal(t, 7, sum.EvidenceCount)
	assert.InDelta(t, 0.84, sum.Score, 0.001)
	assert.Equal(t, 10, sum.Events)
}

func TestReplay_FailedTask(t *testing.T) {
	r := NewRecorder("")
	r.Record(traceEvent("task-2", 1, models.EventStarted, nil))
	r.Record(traceEvent("task-2", 2, models.EventFailed, models.FailedPayload{Reason: "deadline-exceeded"}))
	out, ok := r.Export("task-2")
	require.True(t, ok)

	sum, err := Replay(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusFailed, sum.Status)
	assert.Equal(t, "deadline-exceeded", sum.FailureReason)
}

func TestReplay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ndjson  string
		wantErr string
	}{
		{
			name:    "empty trace",
			ndjson:  "",
			wantErr: "empty trace",
		},
		{
			name:    "no terminal event",
			ndjson:  `{"task_id":"t","seq":1,"event_type":"started"}` + "\n",
			wantErr: "no terminal event",
		},
		{
			name: "out of order",
			ndjson: `{"task_id":"t","seq":2,"event_type":"started"}` + "\n" +
				`{"task_id":"t","seq":1,"event_type":"completed"}` + "\n",
			wantErr: "out of order",
		},
		{
			name: "mixed tasks",
			ndjson: `{"task_id":"t","seq":1,"event_type":"started"}` + "\n" +
				`{"task_id":"u","seq":2,"event_type":"completed"}` + "\n",
			wantErr: "mixes tasks",
		},
		{
			name:    "malformed line",
			ndjson:  "not json\n",
			wantErr: "parse trace line",
		},
		{
			name: "event after terminal",
			ndjson: `{"task_id":"t","seq":1,"event_type":"completed"}` + "\n" +
				`{"task_id":"t","seq":2,"event_type":"evidence"}` + "\n",
			wantErr: "after terminal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay(strings.NewReader(tt.ndjson))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRecorder_EvictsOldestFinished(t *testing.T) {
	r := NewRecorder("")
	for i := 0; i <= maxRetainedTraces; i++ {
		id := fmt.Sprintf("task-%d", i)
		r.Record(traceEvent(id, 1, models.EventCompleted, nil))
	}

	_, ok := r.Export("task-0")
	assert.False(t, ok, "oldest finished trace is evicted")
	_, ok = r.Export(fmt.Sprintf("task-%d", maxRetainedTraces))
	assert.True(t, ok)
}
