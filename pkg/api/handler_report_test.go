package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
)

func seedReport(t *testing.T, store *persistence.MemoryStore, taskID string) {
	t.Helper()
	require.NoError(t, store.CreateReport(context.Background(), &models.Report{
		TaskID:       taskID,
		Markdown:     "# Research Report\n\nFindings.",
		Bibliography: "[ev_1] Grid storage outlook — https://example.org/storage",
		Summary: &models.ResearchSummary{
			Query:         "grid storage",
			Iterations:    2,
			TotalEvidence: 7,
			QualityScore:  0.85,
		},
		Metrics: &models.QualityMetrics{
			CompletionScore: 0.85,
			CompletionLevel: "high",
			EvidenceCount:   7,
		},
	}))
}

func TestGetReportHandler(t *testing.T) {
	t.Run("completed task returns report", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusCompleted)
		seedReport(t, store, "task-1")

		rec := doJSON(s, http.MethodGet, "/reports/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "task-1", resp.TaskID)
		assert.Equal(t, "completed", resp.Status)
		assert.Contains(t, resp.ReportMD, "Research Report")
		assert.Contains(t, resp.SourcesBib, "https://example.org/storage")
		assert.Contains(t, string(resp.MetricsJSON), "completion_score")
	})

	t.Run("unfinished task returns status only", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusRunning)

		rec := doJSON(s, http.MethodGet, "/reports/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "running", resp.Status)
		assert.Empty(t, resp.ReportMD)
		assert.Empty(t, resp.ErrorReason)
	})

	t.Run("failed task returns error reason", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		task := seedTask(t, store, "task-1", models.TaskStatusAccepted)
		require.NoError(t, store.UpdateTaskStatus(context.Background(), task.ID,
			models.TaskStatusFailed, models.StatusExtras{Details: "deadline-exceeded"}))

		rec := doJSON(s, http.MethodGet, "/reports/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "failed", resp.Status)
		assert.Equal(t, "deadline-exceeded", resp.ErrorReason)
		assert.Empty(t, resp.ReportMD)
	})

	t.Run("unknown task is 404", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodGet, "/reports/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetDeepReportHandler(t *testing.T) {
	t.Run("includes summary and metrics", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		seedTask(t, store, "task-1", models.TaskStatusCompleted)
		seedReport(t, store, "task-1")

		rec := doJSON(s, http.MethodGet, "/deep-research/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeepReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "completed", resp.Status)
		require.NotNil(t, resp.ResearchSummary)
		assert.Equal(t, 2, resp.ResearchSummary.Iterations)
		assert.Equal(t, 7, resp.ResearchSummary.TotalEvidence)
		require.NotNil(t, resp.QualityMetrics)
		assert.InDelta(t, 0.85, resp.QualityMetrics.CompletionScore, 1e-9)
	})

	t.Run("failed task returns error reason", func(t *testing.T) {
		s, store, _ := newTestServer(t)
		task := seedTask(t, store, "task-1", models.TaskStatusAccepted)
		require.NoError(t, store.UpdateTaskStatus(context.Background(), task.ID,
			models.TaskStatusFailed, models.StatusExtras{Details: "cancelled"}))

		rec := doJSON(s, http.MethodGet, "/deep-research/task-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DeepReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "failed", resp.Status)
		assert.Equal(t, "cancelled", resp.ErrorReason)
		assert.Nil(t, resp.ResearchSummary)
	})
}
