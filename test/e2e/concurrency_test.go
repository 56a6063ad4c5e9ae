package e2e

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// Concurrent runs through the worker pool
// ────────────────────────────────────────────────────────────

func TestE2E_ConcurrentTasks(t *testing.T) {
	app := NewTestApp(t)

	// Three tasks against two workers: one queues behind the others and
	// still finishes once a worker frees up.
	var taskIDs []string
	for i := 0; i < 3; i++ {
		resp := app.SubmitResearch(t, fmt.Sprintf("parallel research topic %d", i+1))
		taskIDs = append(taskIDs, TaskID(t, resp))
	}

	for _, id := range taskIDs {
		status := app.WaitForTaskStatus(t, id, "completed")
		assert.Greater(t, status["evidence_count"].(float64), float64(0), "task %s finished without evidence", id)
	}

	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	pool := health["worker_pool"].(map[string]interface{})
	assert.Equal(t, float64(2), pool["total_workers"])
	assert.Equal(t, true, pool["is_healthy"])
	assert.Equal(t, false, health["cached"])

	// An immediate re-probe serves the cached snapshot.
	again := app.GetHealth(t)
	assert.Equal(t, true, again["cached"])
}

// ────────────────────────────────────────────────────────────
// Task listing, filters, pagination
// ────────────────────────────────────────────────────────────

func TestE2E_TaskListing(t *testing.T) {
	blocked := make(chan struct{}, 1)
	sp := NewScriptedProvider()
	sp.AddSearch(ProviderScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t, WithProviderClient(sp))

	// One cancelled task, then two that run to completion on defaults.
	first := TaskID(t, app.SubmitResearch(t, "listing fixture one"))
	<-blocked
	app.CancelTask(t, first)
	app.WaitForTaskStatus(t, first, "failed")

	second := TaskID(t, app.SubmitResearch(t, "listing fixture two"))
	app.WaitForTaskStatus(t, second, "completed")
	third := TaskID(t, app.SubmitResearch(t, "listing fixture three"))
	app.WaitForTaskStatus(t, third, "completed")

	// Full list, newest first.
	list := app.getJSON(t, "/tasks", http.StatusOK)
	assert.Equal(t, float64(3), list["total"])
	tasks := list["tasks"].([]interface{})
	require.Len(t, tasks, 3)
	assert.Equal(t, third, tasks[0].(map[string]interface{})["task_id"])
	assert.Equal(t, first, tasks[2].(map[string]interface{})["task_id"])

	// Status filters partition the set.
	completed := app.getJSON(t, "/tasks?status=completed", http.StatusOK)
	assert.Equal(t, float64(2), completed["total"])
	failed := app.getJSON(t, "/tasks?status=failed", http.StatusOK)
	assert.Equal(t, float64(1), failed["total"])
	failedTasks := failed["tasks"].([]interface{})
	require.Len(t, failedTasks, 1)
	assert.Equal(t, first, failedTasks[0].(map[string]interface{})["task_id"])

	// Pagination slices the same ordering.
	page1 := app.getJSON(t, "/tasks?page=1&page_size=2", http.StatusOK)
	assert.Equal(t, float64(3), page1["total"])
	assert.Len(t, page1["tasks"].([]interface{}), 2)
	page2 := app.getJSON(t, "/tasks?page=2&page_size=2", http.StatusOK)
	assert.Equal(t, float64(3), page2["total"])
	assert.Len(t, page2["tasks"].([]interface{}), 1)
	assert.Equal(t, float64(2), page2["page"])

	// Cancelled task keeps its failure reason in the listing row.
	row := failedTasks[0].(map[string]interface{})
	assert.Equal(t, "cancelled", row["details"])
}
