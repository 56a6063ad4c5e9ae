package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// SubmitResearch posts a simple research query and returns the parsed response.
func (app *TestApp) SubmitResearch(t *testing.T, query string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{"query": query}
	return app.postJSON(t, "/research", body, http.StatusAccepted)
}

// SubmitDeepResearch posts a deep research request and returns the parsed response.
func (app *TestApp) SubmitDeepResearch(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/deep-research", body, http.StatusAccepted)
}

// GetTaskStatus retrieves a task's status record.
func (app *TestApp) GetTaskStatus(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/tasks/"+taskID+"/status", http.StatusOK)
}

// GetReport calls GET /reports/:id.
func (app *TestApp) GetReport(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/reports/"+taskID, http.StatusOK)
}

// GetDeepReport calls GET /deep-research/:id.
func (app *TestApp) GetDeepReport(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/deep-research/"+taskID, http.StatusOK)
}

// GetLogs retrieves a task's log records.
func (app *TestApp) GetLogs(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/tasks/"+taskID+"/logs", http.StatusOK)
}

// CancelTask requests cancellation of a task.
func (app *TestApp) CancelTask(t *testing.T, taskID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/tasks/"+taskID+"/cancel", nil, http.StatusAccepted)
}

// GetHealth calls GET /health.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/health", http.StatusOK)
}

// GetTraceEvents fetches a task's NDJSON trace and parses it line by line.
func (app *TestApp) GetTraceEvents(t *testing.T, taskID string) []map[string]interface{} {
	t.Helper()
	data, contentType := app.getRaw(t, "/traces/"+taskID, http.StatusOK)
	require.Contains(t, contentType, "application/x-ndjson")

	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var ev map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &ev), "malformed trace line: %s", line)
		events = append(events, ev)
	}
	return events
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func (app *TestApp) getRaw(t *testing.T, path string, expectedStatus int) ([]byte, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status", path)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data, resp.Header.Get("Content-Type")
}

// ────────────────────────────────────────────────────────────
// Progress and Polling Helpers
// ────────────────────────────────────────────────────────────

// ProgressSocket opens the WebSocket progress stream for taskID.
func (app *TestApp) ProgressSocket(t *testing.T, taskID string) *WSClient {
	t.Helper()
	ws, err := WSConnect(context.Background(), app.WSBase, taskID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

// WaitForTaskStatus polls the status endpoint until the task reaches the
// given status or the deadline passes.
func (app *TestApp) WaitForTaskStatus(t *testing.T, taskID, status string) map[string]interface{} {
	t.Helper()
	deadline := time.After(15 * time.Second)
	tick := time.NewTicker(25 * time.Millisecond)
	defer tick.Stop()

	var last map[string]interface{}
	for {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for task %s to reach %q (last: %v)", taskID, status, last["status"])
		case <-tick.C:
			last = app.GetTaskStatus(t, taskID)
			if last["status"] == status {
				return last
			}
		}
	}
}

// TaskID extracts the task_id field from an intake response.
func TaskID(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	id, ok := resp["task_id"].(string)
	require.True(t, ok, "response has no task_id: %v", resp)
	require.NotEmpty(t, id)
	return id
}

// eventSeqs extracts the sequence numbers from progress events in order.
func eventSeqs(events []WSEvent) []uint64 {
	seqs := make([]uint64, 0, len(events))
	for _, e := range events {
		seqs = append(seqs, e.Seq)
	}
	return seqs
}
