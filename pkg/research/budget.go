// Package research implements the iterative research pipeline: a planner
// that decomposes the query, a researcher that gathers evidence, an
// evaluator that judges coverage, and a writer that synthesizes the report,
// all driven by a per-task orchestrator.
package research

import "sync"

// Provider call costs in budget units.
const (
	searchCost     = 1
	completionCost = 2
)

// Budget is a task-scoped spending pool. Researcher goroutines draw from it
// concurrently; once drained no further provider calls are made on the
// task's behalf.
type Budget struct {
	mu        sync.Mutex
	remaining int
}

func NewBudget(units int) *Budget {
	if units < 0 {
		units = 0
	}
	return &Budget{remaining: units}
}

// TrySpend deducts cost units atomically. It reports false, deducting
// nothing, when fewer than cost units remain.
func (b *Budget) TrySpend(cost int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.remaining < cost {
		return false
	}
	b.remaining -= cost
	return true
}

// Remaining returns the unspent units.
func (b *Budget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// CanSearch reports whether at least one more search is affordable.
func (b *Budget) CanSearch() bool {
	return b.Remaining() >= searchCost
}
