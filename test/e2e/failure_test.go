package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/provider"
)

// ────────────────────────────────────────────────────────────
// Provider failure surfaces as a failed task, not a hung one
// ────────────────────────────────────────────────────────────

func TestE2E_PlannerProviderFailure(t *testing.T) {
	sp := NewScriptedProvider()
	sp.AddCompletion(provider.RolePlanner, ProviderScriptEntry{
		Err: &provider.TransportError{
			Capability: "complete-text",
			Status:     503,
			Err:        errors.New("upstream unavailable"),
		},
	})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitResearch(t, "query that never gets a plan")
	taskID := TaskID(t, resp)

	status := app.WaitForTaskStatus(t, taskID, "failed")
	assert.Equal(t, "provider-error", status["details"])

	// The run died before planning, so the stream is just start and failure.
	events := app.GetTraceEvents(t, taskID)
	assert.Equal(t, []string{"started", "failed"}, traceTypes(events))
	data := events[len(events)-1]["data"].(map[string]interface{})
	assert.Equal(t, "provider-error", data["reason"])

	report := app.GetReport(t, taskID)
	assert.Equal(t, "failed", report["status"])
	assert.Equal(t, "provider-error", report["error_reason"])
	assert.NotContains(t, report, "report_md")
}

func TestE2E_WriterProviderFailure(t *testing.T) {
	// Research and evaluation succeed on defaults; only the final report
	// completion fails.
	sp := NewScriptedProvider()
	sp.AddCompletion(provider.RoleWriter, ProviderScriptEntry{
		Err: &provider.TransportError{
			Capability: "complete-text",
			Err:        errors.New("connection reset"),
		},
	})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitResearch(t, "report generation interrupted")
	taskID := TaskID(t, resp)

	status := app.WaitForTaskStatus(t, taskID, "failed")
	assert.Equal(t, "provider-error", status["details"])

	events := app.GetTraceEvents(t, taskID)
	assert.Equal(t, []string{
		"started", "planning", "iteration", "evidence", "evaluation",
		"report_generation", "failed",
	}, traceTypes(events))

	report := app.GetReport(t, taskID)
	assert.Equal(t, "provider-error", report["error_reason"])
	assert.NotContains(t, report, "report_md")
}

// ────────────────────────────────────────────────────────────
// Per-run deadline
// ────────────────────────────────────────────────────────────

func TestE2E_RunDeadlineExceeded(t *testing.T) {
	// The single scripted search never returns; the per-run deadline has to
	// cut it off.
	sp := NewScriptedProvider()
	sp.AddSearch(ProviderScriptEntry{BlockUntilCancelled: true})

	cfg := defaultTestConfig()
	cfg.DefaultTimeout = 200 * time.Millisecond
	app := NewTestApp(t, WithProviderClient(sp), WithResearchConfig(cfg))

	resp := app.SubmitDeepResearch(t, map[string]interface{}{
		"query": "search backend that never answers",
	})
	taskID := TaskID(t, resp)

	status := app.WaitForTaskStatus(t, taskID, "failed")
	assert.Equal(t, "deadline-exceeded", status["details"])

	events := app.GetTraceEvents(t, taskID)
	last := events[len(events)-1]
	assert.Equal(t, "failed", last["event_type"])
	data := last["data"].(map[string]interface{})
	assert.Equal(t, "deadline-exceeded", data["reason"])
}

// ────────────────────────────────────────────────────────────
// Observer attaching after the stream already finished
// ────────────────────────────────────────────────────────────

func TestE2E_ObserverAfterFinish(t *testing.T) {
	app := NewTestApp(t)

	resp := app.SubmitResearch(t, "short lived research run")
	taskID := TaskID(t, resp)
	app.WaitForTaskStatus(t, taskID, "completed")

	// The stream is gone; the subscriber gets a single control message
	// naming the task and a clean close, never a partial replay.
	ws := app.ProgressSocket(t, taskID)
	finished, err := ws.WaitForEventType("task.finished", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, taskID, finished.Parsed["task_id"])

	require.NoError(t, ws.AwaitClosed(5*time.Second))
	assert.Empty(t, ws.ProgressEvents())
}
