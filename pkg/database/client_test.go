package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/ent"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/tasklog"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/test/util"
)

func newTaskFixture(t *testing.T, client *Client, id string) *ent.ResearchTask {
	t.Helper()
	task, err := client.ResearchTask.Create().
		SetID(id).
		SetQuery("impact of solar flares on satellite constellations").
		SetKind(researchtask.KindDeep).
		SetMaxIterations(4).
		SetMinCompletionScore(0.75).
		SetBudget(40).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, Config{
		URL:          util.PostgresConnString(t),
		Database:     "delver_test",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	t.Run("MigrationsApplied", func(t *testing.T) {
		var n int
		err := client.DB().QueryRowContext(ctx,
			`SELECT count(*) FROM information_schema.tables
			 WHERE table_name IN ('research_tasks', 'reports', 'task_logs')`).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("TaskRoundTrip", func(t *testing.T) {
		created := newTaskFixture(t, client, "task-rt-1")
		assert.Equal(t, "task-rt-1", created.ID)
		assert.Equal(t, researchtask.StatusAccepted, created.Status)

		got, err := client.ResearchTask.Query().
			Where(researchtask.IDEQ("task-rt-1")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, researchtask.KindDeep, got.Kind)
		assert.Equal(t, 40, got.Budget)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Nil(t, got.StartedAt)
	})

	t.Run("StatusUpdate", func(t *testing.T) {
		newTaskFixture(t, client, "task-up-1")

		now := time.Now()
		err := client.ResearchTask.UpdateOneID("task-up-1").
			SetStatus(researchtask.StatusRunning).
			SetStartedAt(now).
			Exec(ctx)
		require.NoError(t, err)

		got, err := client.ResearchTask.Get(ctx, "task-up-1")
		require.NoError(t, err)
		assert.Equal(t, researchtask.StatusRunning, got.Status)
		require.NotNil(t, got.StartedAt)
		assert.WithinDuration(t, now, *got.StartedAt, time.Second)
	})

	t.Run("OneReportPerTask", func(t *testing.T) {
		newTaskFixture(t, client, "task-rep-1")

		_, err := client.Report.Create().
			SetID("rep-1").
			SetTaskID("task-rep-1").
			SetReportMd("# Report").
			Save(ctx)
		require.NoError(t, err)

		_, err = client.Report.Create().
			SetID("rep-2").
			SetTaskID("task-rep-1").
			SetReportMd("# Duplicate").
			Save(ctx)
		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))
	})

	t.Run("ReportJSONColumns", func(t *testing.T) {
		newTaskFixture(t, client, "task-json-1")

		_, err := client.Report.Create().
			SetID("rep-json-1").
			SetTaskID("task-json-1").
			SetReportMd("# Findings").
			SetSourcesBib("[src-1] Example Source, https://example.org").
			SetResearchSummary(&models.ResearchSummary{
				Query:         "q",
				Iterations:    2,
				TotalEvidence: 7,
				QualityScore:  0.81,
			}).
			SetQualityMetrics(&models.QualityMetrics{
				CompletionScore: 0.81,
				EvidenceCount:   7,
			}).
			Save(ctx)
		require.NoError(t, err)

		got, err := client.Report.Query().
			Where(report.TaskID("task-json-1")).
			Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, got.ResearchSummary)
		assert.Equal(t, 2, got.ResearchSummary.Iterations)
		require.NotNil(t, got.QualityMetrics)
		assert.InDelta(t, 0.81, got.QualityMetrics.CompletionScore, 1e-9)
	})

	t.Run("LogsCascadeWithTask", func(t *testing.T) {
		newTaskFixture(t, client, "task-del-1")

		for _, msg := range []string{"starting", "planning", "researching"} {
			_, err := client.TaskLog.Create().
				SetTaskID("task-del-1").
				SetLevel(tasklog.LevelInfo).
				SetMessage(msg).
				Save(ctx)
			require.NoError(t, err)
		}

		err := client.ResearchTask.DeleteOneID("task-del-1").Exec(ctx)
		require.NoError(t, err)

		n, err := client.TaskLog.Query().
			Where(tasklog.TaskID("task-del-1")).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Health", func(t *testing.T) {
		status, err := client.Health(ctx)
		require.NoError(t, err)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, 10, status.MaxOpenConns)
	})
}
