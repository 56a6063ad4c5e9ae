package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
)

func seedTask(t *testing.T, store *persistence.MemoryStore, id string, status models.TaskStatus) *models.ResearchTask {
	t.Helper()
	task := &models.ResearchTask{
		ID:     id,
		Query:  "solid state battery manufacturing",
		Kind:   models.TaskKindSimple,
		Config: models.TaskConfig{MaxIterations: 1, MinCompletionScore: 0.75, Budget: 50},
		Status: status,
	}
	require.NoError(t, store.CreateTask(context.Background(), task))
	return task
}

func TestTaskStatusHandler(t *testing.T) {
	t.Run("returns task record", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusRunning)

		rec := doJSON(s, http.MethodGet, "/tasks/task-1/status", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var task models.ResearchTask
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
		assert.Equal(t, "task-1", task.ID)
		assert.Equal(t, models.TaskStatusRunning, task.Status)
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks/missing/status", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "resource not found")
	})
}

func TestListTasksHandler(t *testing.T) {
	newListServer := func(t *testing.T) *Server {
		t.Helper()
		s, store, _ := newTestServer(t)
		base := time.Now().Add(-time.Hour)
		for i, status := range []models.TaskStatus{
			models.TaskStatusCompleted,
			models.TaskStatusRunning,
			models.TaskStatusAccepted,
		} {
			task := &models.ResearchTask{
				ID:        fmt.Sprintf("task-%d", i+1),
				Query:     "offshore wind capacity factors",
				Kind:      models.TaskKindDeep,
				Status:    status,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			}
			require.NoError(t, store.CreateTask(context.Background(), task))
		}
		return s
	}

	t.Run("newest first with defaults", func(t *testing.T) {
		s := newListServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		require.Len(t, resp.Tasks, 3)
		assert.Equal(t, "task-3", resp.Tasks[0].ID)
		assert.Equal(t, "task-1", resp.Tasks[2].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		s := newListServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks?page=2&page_size=2", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Page)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "task-1", resp.Tasks[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		s := newListServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks?status=completed", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "task-1", resp.Tasks[0].ID)
	})

	t.Run("invalid status is 400", func(t *testing.T) {
		s := newListServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks?status=paused", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid status")
	})
}

func TestTaskLogsHandler(t *testing.T) {
	base := time.Now().UTC().Truncate(time.Second)

	newLogsServer := func(t *testing.T) *Server {
		t.Helper()
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusRunning)
		for i, msg := range []string{"run started", "evidence collected", "report written"} {
			require.NoError(t, store.AppendLog(context.Background(), models.LogRecord{
				TaskID:    "task-1",
				Level:     models.LogInfo,
				Message:   msg,
				Timestamp: base.Add(time.Duration(i) * time.Second),
			}))
		}
		return s
	}

	t.Run("returns logs in order", func(t *testing.T) {
		s := newLogsServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks/task-1/logs", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskLogsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "task-1", resp.TaskID)
		require.Len(t, resp.Logs, 3)
		assert.Equal(t, "run started", resp.Logs[0].Message)
		assert.Equal(t, "report written", resp.Logs[2].Message)
	})

	t.Run("since returns records strictly after", func(t *testing.T) {
		s := newLogsServer(t)

		since := base.Add(time.Second).Format(time.RFC3339)
		rec := doJSON(s, http.MethodGet, "/tasks/task-1/logs?since="+since, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskLogsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Logs, 1)
		assert.Equal(t, "report written", resp.Logs[0].Message)
	})

	t.Run("invalid since is 400", func(t *testing.T) {
		s := newLogsServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks/task-1/logs?since=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "RFC3339")
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodGet, "/tasks/missing/logs", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCancelTaskHandler(t *testing.T) {
	t.Run("accepted cancel is 202", func(t *testing.T) {
		s, store, pool := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusRunning)

		rec := doJSON(s, http.MethodPost, "/tasks/task-1/cancel", "")
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp CancelResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "task-1", resp.TaskID)

		pool.mu.Lock()
		defer pool.mu.Unlock()
		assert.Equal(t, []string{"task-1"}, pool.cancelled)
	})

	t.Run("terminal task is 409", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusCompleted)

		rec := doJSON(s, http.MethodPost, "/tasks/task-1/cancel", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "terminal")
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodPost, "/tasks/missing/cancel", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
