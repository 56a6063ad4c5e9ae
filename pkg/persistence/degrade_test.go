package persistence

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
)

// faultStore acts as the durable backend with switchable write failures.
type faultStore struct {
	*MemoryStore
	failWrites atomic.Bool
}

func newFaultStore() *faultStore {
	return &faultStore{MemoryStore: NewMemoryStore()}
}

var errConnRefused = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func (f *faultStore) CreateTask(ctx context.Context, task *models.ResearchTask) error {
	if f.failWrites.Load() {
		return errConnRefused
	}
	return f.MemoryStore.CreateTask(ctx, task)
}

func (f *faultStore) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, extras models.StatusExtras) error {
	if f.failWrites.Load() {
		return errConnRefused
	}
	return f.MemoryStore.UpdateTaskStatus(ctx, id, status, extras)
}

func (f *faultStore) CreateReport(ctx context.Context, report *models.Report) error {
	if f.failWrites.Load() {
		return errConnRefused
	}
	return f.MemoryStore.CreateReport(ctx, report)
}

func (f *faultStore) AppendLog(ctx context.Context, rec models.LogRecord) error {
	if f.failWrites.Load() {
		return errConnRefused
	}
	return f.MemoryStore.AppendLog(ctx, rec)
}

func (f *faultStore) Mode() string { return ModeDurable }

func TestDegradingStore_HealthyPassThrough(t *testing.T) {
	ctx := context.Background()
	durable := newFaultStore()
	fallback := NewMemoryStore()
	store := NewDegradingStore(durable, fallback)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTask(ctx, seedTask("dg-1", base)))

	assert.Equal(t, ModeDurable, store.Mode())
	assert.False(t, store.Degraded())

	// The write lands on the durable backend and is shadowed to the fallback.
	fromDurable, err := durable.GetTask(ctx, "dg-1")
	require.NoError(t, err)
	assert.Equal(t, "dg-1", fromDurable.ID)

	fromFallback, err := fallback.GetTask(ctx, "dg-1")
	require.NoError(t, err)
	assert.Equal(t, "dg-1", fromFallback.ID)
}

func TestDegradingStore_SwapsOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	durable := newFaultStore()
	store := NewDegradingStore(durable, NewMemoryStore())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTask(ctx, seedTask("dg-swap-1", base)))

	durable.failWrites.Store(true)

	// The failing durable write is absorbed: the fallback serves it.
	err := store.UpdateTaskStatus(ctx, "dg-swap-1", models.TaskStatusRunning, models.StatusExtras{})
	require.NoError(t, err)
	assert.True(t, store.Degraded())
	assert.Equal(t, ModeMemory, store.Mode())

	// Reads now come from the fallback, which has the full history.
	got, err := store.GetTask(ctx, "dg-swap-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, got.Status)

	// Later writes stay on the fallback even if the durable backend heals.
	durable.failWrites.Store(false)
	require.NoError(t, store.UpdateTaskStatus(ctx, "dg-swap-1", models.TaskStatusCompleted,
		models.StatusExtras{}))
	assert.True(t, store.Degraded())

	fromDurable, err := durable.GetTask(ctx, "dg-swap-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusAccepted, fromDurable.Status,
		"durable backend must not see post-degradation writes")
}

func TestDegradingStore_ContractErrorsDoNotDegrade(t *testing.T) {
	ctx := context.Background()
	store := NewDegradingStore(newFaultStore(), NewMemoryStore())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTask(ctx, seedTask("dg-ce-1", base)))

	assert.ErrorIs(t, store.CreateTask(ctx, seedTask("dg-ce-1", base)), ErrAlreadyExists)
	assert.ErrorIs(t, store.UpdateTaskStatus(ctx, "dg-ce-missing", models.TaskStatusRunning,
		models.StatusExtras{}), ErrNotFound)
	assert.ErrorIs(t, store.AppendLog(ctx, models.LogRecord{TaskID: "dg-ce-missing"}), ErrNotFound)

	assert.False(t, store.Degraded())
	assert.Equal(t, ModeDurable, store.Mode())
}

func TestDegradingStore_ReportSurvivesDegradation(t *testing.T) {
	ctx := context.Background()
	durable := newFaultStore()
	store := NewDegradingStore(durable, NewMemoryStore())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.CreateTask(ctx, seedTask("dg-rep-1", base)))

	durable.failWrites.Store(true)
	require.NoError(t, store.AppendLog(ctx, models.LogRecord{
		TaskID:  "dg-rep-1",
		Level:   models.LogInfo,
		Message: "iteration 1 done",
	}))
	require.True(t, store.Degraded())

	rep := &models.Report{TaskID: "dg-rep-1", Markdown: "# After the fall"}
	require.NoError(t, store.CreateReport(ctx, rep))

	got, err := store.GetReport(ctx, "dg-rep-1")
	require.NoError(t, err)
	assert.Equal(t, "# After the fall", got.Markdown)

	logs, err := store.ListLogs(ctx, "dg-rep-1", nil)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "iteration 1 done", logs[0].Message)
}
