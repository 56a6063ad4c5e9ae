package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
)

func seedTask(id string, createdAt time.Time) *models.ResearchTask {
	return &models.ResearchTask{
		ID:    id,
		Query: "quantum error correction progress since 2020",
		Kind:  models.TaskKindDeep,
		Config: models.TaskConfig{
			MaxIterations:      3,
			MinCompletionScore: 0.75,
			Budget:             60,
		},
		Status:    models.TaskStatusAccepted,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// runStoreContract exercises the Store semantics both backends must share.
// Subtests use disjoint task IDs so the suite can run against a single
// store instance.
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("CreateAndGet", func(t *testing.T) {
		task := seedTask("ct-get-1", base)
		require.NoError(t, store.CreateTask(ctx, task))

		got, err := store.GetTask(ctx, "ct-get-1")
		require.NoError(t, err)
		assert.Equal(t, task.Query, got.Query)
		assert.Equal(t, models.TaskKindDeep, got.Kind)
		assert.Equal(t, 60, got.Config.Budget)
		assert.Equal(t, models.TaskStatusAccepted, got.Status)
		assert.Nil(t, got.StartedAt)

		_, err = store.GetTask(ctx, "ct-get-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DuplicateCreate", func(t *testing.T) {
		task := seedTask("ct-dup-1", base)
		require.NoError(t, store.CreateTask(ctx, task))
		assert.ErrorIs(t, store.CreateTask(ctx, task), ErrAlreadyExists)
	})

	t.Run("StatusLifecycle", func(t *testing.T) {
		require.NoError(t, store.CreateTask(ctx, seedTask("ct-life-1", base)))

		started := base.Add(time.Second)
		require.NoError(t, store.UpdateTaskStatus(ctx, "ct-life-1", models.TaskStatusRunning,
			models.StatusExtras{StartedAt: &started}))

		got, err := store.GetTask(ctx, "ct-life-1")
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusRunning, got.Status)
		require.NotNil(t, got.StartedAt)
		assert.WithinDuration(t, started, *got.StartedAt, time.Second)

		completed := base.Add(45 * time.Second)
		count := 12
		require.NoError(t, store.UpdateTaskStatus(ctx, "ct-life-1", models.TaskStatusCompleted,
			models.StatusExtras{
				CompletedAt:    &completed,
				EvidenceCount:  &count,
				SourcesSummary: "12 items from 4 hosts",
			}))

		got, err = store.GetTask(ctx, "ct-life-1")
		require.NoError(t, err)
		assert.Equal(t, models.TaskStatusCompleted, got.Status)
		assert.Equal(t, 12, got.EvidenceCount)
		assert.Equal(t, "12 items from 4 hosts", got.SourcesSummary)
		require.NotNil(t, got.CompletedAt)

		// Same-state write on a terminal task is a no-op.
		assert.NoError(t, store.UpdateTaskStatus(ctx, "ct-life-1", models.TaskStatusCompleted,
			models.StatusExtras{}))

		// Transitions out of a terminal state are rejected.
		assert.ErrorIs(t, store.UpdateTaskStatus(ctx, "ct-life-1", models.TaskStatusFailed,
			models.StatusExtras{}), ErrTerminalState)

		assert.ErrorIs(t, store.UpdateTaskStatus(ctx, "ct-life-missing", models.TaskStatusRunning,
			models.StatusExtras{}), ErrNotFound)
	})

	t.Run("ListOrderingAndPaging", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			id := fmt.Sprintf("ct-list-%d", i)
			require.NoError(t, store.CreateTask(ctx, seedTask(id, base.Add(time.Duration(i)*time.Minute))))
		}
		require.NoError(t, store.UpdateTaskStatus(ctx, "ct-list-0", models.TaskStatusRunning,
			models.StatusExtras{}))
		require.NoError(t, store.UpdateTaskStatus(ctx, "ct-list-3", models.TaskStatusRunning,
			models.StatusExtras{}))

		running, total, err := store.ListTasks(ctx, models.TaskFilters{Status: models.TaskStatusRunning})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, running, 2)
		// Created-at descending: ct-list-3 was created after ct-list-0.
		assert.Equal(t, "ct-list-3", running[0].ID)
		assert.Equal(t, "ct-list-0", running[1].ID)

		page2, _, err := store.ListTasks(ctx, models.TaskFilters{
			Status:   models.TaskStatusRunning,
			Page:     2,
			PageSize: 1,
		})
		require.NoError(t, err)
		require.Len(t, page2, 1)
		assert.Equal(t, "ct-list-0", page2[0].ID)

		empty, total, err := store.ListTasks(ctx, models.TaskFilters{
			Status: models.TaskStatusRunning,
			Page:   9,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Empty(t, empty)
	})

	t.Run("ReportUniquePerTask", func(t *testing.T) {
		require.NoError(t, store.CreateTask(ctx, seedTask("ct-rep-1", base)))

		rep := &models.Report{
			TaskID:       "ct-rep-1",
			Markdown:     "# Quantum Error Correction\n\nFindings [src-1].",
			Bibliography: "[src-1] Surface codes review, https://example.org/qec",
			Summary: &models.ResearchSummary{
				Query:         "quantum error correction progress since 2020",
				Iterations:    2,
				TotalEvidence: 9,
				QualityScore:  0.82,
			},
			Metrics: &models.QualityMetrics{
				CompletionScore: 0.82,
				CompletionLevel: "complete",
				EvidenceCount:   9,
			},
		}
		require.NoError(t, store.CreateReport(ctx, rep))
		assert.ErrorIs(t, store.CreateReport(ctx, rep), ErrAlreadyExists)

		unknown := &models.Report{TaskID: "ct-rep-missing", Markdown: "# x"}
		assert.ErrorIs(t, store.CreateReport(ctx, unknown), ErrNotFound)

		got, err := store.GetReport(ctx, "ct-rep-1")
		require.NoError(t, err)
		assert.Equal(t, rep.Markdown, got.Markdown)
		assert.Equal(t, rep.Bibliography, got.Bibliography)
		require.NotNil(t, got.Summary)
		assert.Equal(t, 2, got.Summary.Iterations)
		require.NotNil(t, got.Metrics)
		assert.InDelta(t, 0.82, got.Metrics.CompletionScore, 1e-9)

		_, err = store.GetReport(ctx, "ct-rep-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Logs", func(t *testing.T) {
		require.NoError(t, store.CreateTask(ctx, seedTask("ct-log-1", base)))

		for i, msg := range []string{"task started", "planning complete", "iteration 1 done"} {
			require.NoError(t, store.AppendLog(ctx, models.LogRecord{
				TaskID:    "ct-log-1",
				Level:     models.LogInfo,
				Message:   msg,
				Timestamp: base.Add(time.Duration(i) * time.Second),
			}))
		}

		all, err := store.ListLogs(ctx, "ct-log-1", nil)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "task started", all[0].Message)
		assert.Equal(t, "iteration 1 done", all[2].Message)
		assert.True(t, all[0].Timestamp.Before(all[1].Timestamp))

		since := base.Add(500 * time.Millisecond)
		recent, err := store.ListLogs(ctx, "ct-log-1", &since)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "planning complete", recent[0].Message)

		assert.ErrorIs(t, store.AppendLog(ctx, models.LogRecord{
			TaskID:  "ct-log-missing",
			Level:   models.LogInfo,
			Message: "orphan",
		}), ErrNotFound)

		none, err := store.ListLogs(ctx, "ct-log-missing", nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
