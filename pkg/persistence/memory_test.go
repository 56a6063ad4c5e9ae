package persistence

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
)

func TestMemoryStore_Contract(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_Mode(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, ModeMemory, store.Mode())
	assert.False(t, store.Degraded())
	assert.NoError(t, store.Close())
}

func TestMemoryStore_CopyIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateTask(ctx, seedTask("iso-1", base)))

	got, err := store.GetTask(ctx, "iso-1")
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	got.Status = models.TaskStatusFailed
	got.Query = "tampered"

	again, err := store.GetTask(ctx, "iso-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusAccepted, again.Status)
	assert.NotEqual(t, "tampered", again.Query)

	rep := &models.Report{
		TaskID:   "iso-1",
		Markdown: "# Original",
		Summary:  &models.ResearchSummary{KeyFindings: []string{"finding one"}},
	}
	require.NoError(t, store.CreateReport(ctx, rep))

	gotRep, err := store.GetReport(ctx, "iso-1")
	require.NoError(t, err)
	gotRep.Summary.KeyFindings[0] = "tampered"

	againRep, err := store.GetReport(ctx, "iso-1")
	require.NoError(t, err)
	assert.Equal(t, "finding one", againRep.Summary.KeyFindings[0])
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Now()

	const goroutines = 8
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				id := fmt.Sprintf("conc-%d-%d", g, i)
				if err := store.CreateTask(ctx, seedTask(id, base)); err != nil {
					t.Error(err)
					return
				}
				if _, err := store.GetTask(ctx, id); err != nil {
					t.Error(err)
					return
				}
				if _, _, err := store.ListTasks(ctx, models.TaskFilters{}); err != nil {
					t.Error(err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	_, total, err := store.ListTasks(ctx, models.TaskFilters{PageSize: maxPageSize})
	require.NoError(t, err)
	assert.Equal(t, goroutines*20, total)
}
