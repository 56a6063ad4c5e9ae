package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/database"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/test/util"
)

// newPostgresStore connects to the shared test database through the full
// database client, migrations included.
func newPostgresStore(t *testing.T) *PostgresStore {
	t.Helper()
	ctx := context.Background()

	client, err := database.NewClient(ctx, database.Config{
		URL:          util.PostgresConnString(t),
		Database:     "delver_test",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	})
	require.NoError(t, err)

	store := NewPostgresStore(client)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgresStore_Contract(t *testing.T) {
	store := newPostgresStore(t)
	runStoreContract(t, store)

	t.Run("Mode", func(t *testing.T) {
		assert.Equal(t, ModeDurable, store.Mode())
		assert.False(t, store.Degraded())
	})
}

// Losing the durable backend mid-task swaps the degrading wrapper to its
// fallback, and the task can still finish carrying the degradation marker.
func TestPostgresStore_DurableLossDegrades(t *testing.T) {
	ctx := context.Background()
	pg := newPostgresStore(t)
	store := NewDegradingStore(pg, NewMemoryStore())

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTask(ctx, seedTask("pg-loss-1", base)))

	// Kill the durable backend out from under the wrapper.
	require.NoError(t, pg.Close())

	started := base.Add(time.Second)
	require.NoError(t, store.UpdateTaskStatus(ctx, "pg-loss-1", models.TaskStatusRunning,
		models.StatusExtras{StartedAt: &started}))
	assert.True(t, store.Degraded())
	assert.Equal(t, ModeMemory, store.Mode())

	// The shadowed history plus the post-loss writes are all served by the
	// fallback.
	done := base.Add(2 * time.Second)
	count := 4
	require.NoError(t, store.UpdateTaskStatus(ctx, "pg-loss-1", models.TaskStatusCompleted,
		models.StatusExtras{
			Details:        models.DetailsDegraded,
			CompletedAt:    &done,
			EvidenceCount:  &count,
			SourcesSummary: "2 hosts: research.example.org (3), example.net (1)",
		}))

	got, err := store.GetTask(ctx, "pg-loss-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)
	assert.Equal(t, models.DetailsDegraded, got.Details)
	assert.Equal(t, 4, got.EvidenceCount)
}
