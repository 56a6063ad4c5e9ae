package research

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_TrySpend(t *testing.T) {
	b := NewBudget(5)

	assert.True(t, b.TrySpend(searchCost))
	assert.True(t, b.TrySpend(completionCost))
	assert.Equal(t, 2, b.Remaining())

	// A spend larger than the remainder deducts nothing.
	assert.False(t, b.TrySpend(3))
	assert.Equal(t, 2, b.Remaining())

	assert.True(t, b.TrySpend(2))
	assert.False(t, b.TrySpend(searchCost))
	assert.Equal(t, 0, b.Remaining())
}

func TestBudget_CanSearch(t *testing.T) {
	assert.True(t, NewBudget(1).CanSearch())
	assert.False(t, NewBudget(0).CanSearch())
	assert.False(t, NewBudget(-7).CanSearch())
}

func TestBudget_ConcurrentSpends(t *testing.T) {
	const units = 40
	b := NewBudget(units)

	var wg sync.WaitGroup
	var mu sync.Mutex
	spent := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b.TrySpend(completionCost) {
				mu.Lock()
				spent += completionCost
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, units, spent)
	assert.Equal(t, 0, b.Remaining())
}
