package research

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/evidence"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

func subTasks(descs ...string) []models.SubTask {
	out := make([]models.SubTask, 0, len(descs))
	for i, d := range descs {
		out = append(out, models.SubTask{
			ID:          fmt.Sprintf("T%02d", i+1),
			Priority:    1.0 - 0.1*float64(i),
			Description: d,
			Iteration:   1,
		})
	}
	return out
}

func citationKeys(items []models.Evidence) []string {
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, it.CitationKey)
	}
	return keys
}

func TestResearcher_CollectsAndKeysEvidence(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	cfg := testResearchConfig()
	cfg.SubQueryConcurrency = 1
	r := NewResearcher(sp, cfg, logs.fn())

	store := evidence.NewStore("q", evidence.NewScorer(nil))
	budget := NewBudget(40)

	added, succeeded, err := r.Research(context.Background(), subTasks("alpha", "beta"), store, budget)
	require.NoError(t, err)
	assert.Equal(t, 6, added)
	assert.Equal(t, 2, succeeded)
	require.Equal(t, 6, store.Count())

	keys := citationKeys(store.Snapshot())
	for _, want := range []string{"S1-1", "S1-2", "S1-3", "S2-1", "S2-2", "S2-3"} {
		assert.Contains(t, keys, want)
	}

	items := store.Snapshot()
	assert.Contains(t, items[0].Tags, "web")
	assert.Contains(t, items[0].Tags, "provider:test")
	assert.NotEmpty(t, items[0].ToolCallID)
	assert.True(t, strings.HasPrefix(items[0].Excerpt, "Condensed:"), "full profile summarizes excerpts")

	// Items from the same sub-query share one tool call ID.
	byCall := make(map[string][]string)
	for _, it := range items {
		byCall[it.ToolCallID] = append(byCall[it.ToolCallID], it.CitationKey)
	}
	assert.Len(t, byCall, 2)

	// 2 searches plus 6 summarizations.
	assert.Equal(t, 40-2*searchCost-6*completionCost, budget.Remaining())
}

func TestResearcher_OrdinalsContinueAcrossIterations(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	r := NewResearcher(sp, testResearchConfig(), logs.fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))
	budget := NewBudget(100)

	_, _, err := r.Research(context.Background(), subTasks("alpha", "beta"), store, budget)
	require.NoError(t, err)
	_, _, err = r.Research(context.Background(), subTasks("gamma"), store, budget)
	require.NoError(t, err)

	keys := citationKeys(store.Snapshot())
	assert.Contains(t, keys, "S3-1")
	for _, key := range keys {
		assert.False(t, strings.HasPrefix(key, "S4-"), "only three sub-queries ran")
	}
}

func TestResearcher_CheapProfileKeepsRawExcerpts(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	cfg := testResearchConfig()
	cfg.CheapProfile = true
	r := NewResearcher(sp, cfg, logs.fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))
	budget := NewBudget(10)

	added, _, err := r.Research(context.Background(), subTasks("alpha"), store, budget)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	assert.Empty(t, sp.completionsByRole(provider.RoleResearcher))
	for _, it := range store.Snapshot() {
		assert.True(t, strings.HasPrefix(it.Excerpt, "Fact "), "raw provider excerpt kept")
	}
	// Only the search was paid for.
	assert.Equal(t, 10-searchCost, budget.Remaining())
}

func TestResearcher_BudgetGatesSubQueries(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	cfg := testResearchConfig()
	cfg.SubQueryConcurrency = 1
	r := NewResearcher(sp, cfg, logs.fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))
	budget := NewBudget(1)

	added, succeeded, err := r.Research(context.Background(), subTasks("alpha", "beta"), store, budget)
	require.NoError(t, err)

	// One search affordable, scaled down to a single result; its
	// summarization was not affordable, so the raw excerpt was stored.
	// The second sub-query was skipped outright.
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, budget.Remaining())
	require.Len(t, sp.searchCalls, 1)
	assert.Equal(t, 1, sp.searchCalls[0].maxResults)
	assert.Empty(t, sp.completionsByRole(provider.RoleResearcher))

	skips := logs.messages(models.LogDebug)
	require.Len(t, skips, 1)
	assert.Contains(t, skips[0], "budget exhausted")
}

func TestResearcher_MaxResultsScaling(t *testing.T) {
	cfg := testResearchConfig() // MaxEvidencePerQuery 5
	full := NewResearcher(newScriptedProvider(), cfg, (&logCapture{}).fn())

	cheapCfg := cfg
	cheapCfg.CheapProfile = true
	cheap := NewResearcher(newScriptedProvider(), cheapCfg, (&logCapture{}).fn())

	// Full profile divides by the completion cost; both clamp to [1, cap].
	assert.Equal(t, 5, full.maxResults(NewBudget(40)))
	assert.Equal(t, 2, full.maxResults(NewBudget(4)))
	assert.Equal(t, 1, full.maxResults(NewBudget(1)))
	assert.Equal(t, 5, cheap.maxResults(NewBudget(40)))
	assert.Equal(t, 4, cheap.maxResults(NewBudget(4)))
}

func TestResearcher_DuplicateHitsDoNotCountAsAdded(t *testing.T) {
	sp := newScriptedProvider()
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		return []provider.SearchResult{
			{URL: "https://a.org/1", Title: "One", Excerpt: "identical text"},
			{URL: "https://a.org/2", Title: "Two", Excerpt: "identical text"},
		}, nil
	}
	cfg := testResearchConfig()
	cfg.CheapProfile = true
	r := NewResearcher(sp, cfg, (&logCapture{}).fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))

	added, succeeded, err := r.Research(context.Background(), subTasks("alpha"), store, NewBudget(10))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, succeeded, "a sub-query whose hits were all duplicates still succeeded")
}

func TestResearcher_SubQueryFailureLoggedAndSkipped(t *testing.T) {
	sp := newScriptedProvider()
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		if strings.Contains(query, "beta") {
			return nil, &provider.TransportError{Capability: "search-web", Err: fmt.Errorf("connection reset")}
		}
		return defaultHits(query, maxResults), nil
	}
	logs := &logCapture{}
	cfg := testResearchConfig()
	cfg.CheapProfile = true
	r := NewResearcher(sp, cfg, logs.fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))

	added, succeeded, err := r.Research(context.Background(), subTasks("alpha", "beta", "gamma"), store, NewBudget(30))
	require.NoError(t, err)
	assert.Equal(t, 6, added)
	assert.Equal(t, 2, succeeded)

	warnings := logs.messages(models.LogWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "T02")
	assert.Contains(t, warnings[0], "connection reset")
}

func TestResearcher_SummarizationFailureFallsBackToRaw(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return "", &provider.TransportError{Capability: "complete-text", Err: fmt.Errorf("model overloaded")}
	}
	logs := &logCapture{}
	r := NewResearcher(sp, testResearchConfig(), logs.fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))

	added, _, err := r.Research(context.Background(), subTasks("alpha"), store, NewBudget(30))
	require.NoError(t, err)
	assert.Equal(t, 3, added)
	for _, it := range store.Snapshot() {
		assert.True(t, strings.HasPrefix(it.Excerpt, "Fact "))
	}
	assert.NotEmpty(t, logs.messages(models.LogWarning))
}

func TestResearcher_ContextCancellationAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResearcher(newScriptedProvider(), testResearchConfig(), (&logCapture{}).fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))

	_, _, err := r.Research(ctx, subTasks("alpha"), store, NewBudget(30))
	require.ErrorIs(t, err, context.Canceled)
}

func TestResearcher_ExcerptCap(t *testing.T) {
	sp := newScriptedProvider()
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		return []provider.SearchResult{
			{URL: "https://a.org/long", Title: "Long", Excerpt: strings.Repeat("verbose finding ", 200)},
		}, nil
	}
	cfg := testResearchConfig()
	cfg.CheapProfile = true
	r := NewResearcher(sp, cfg, (&logCapture{}).fn())
	store := evidence.NewStore("q", evidence.NewScorer(nil))

	_, _, err := r.Research(context.Background(), subTasks("alpha"), store, NewBudget(10))
	require.NoError(t, err)
	items := store.Snapshot()
	require.Len(t, items, 1)
	assert.LessOrEqual(t, len(items[0].Excerpt), maxExcerptLen+len("..."))
}
