package e2e

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/provider"
)

// ────────────────────────────────────────────────────────────
// Scenario 1: Simple Research Happy Path (mock-mode gateway)
// ────────────────────────────────────────────────────────────

var reportCitationRe = regexp.MustCompile(`\[S\d+-\d+\]`)

func TestE2E_SimpleResearch(t *testing.T) {
	app := NewTestApp(t)

	resp := app.SubmitResearch(t, "impact of grid scale battery storage on renewable adoption")
	taskID := TaskID(t, resp)
	assert.Equal(t, "accepted", resp["status"])

	app.WaitForTaskStatus(t, taskID, "completed")

	report := app.GetReport(t, taskID)
	assert.Equal(t, "completed", report["status"])

	body, ok := report["report_md"].(string)
	require.True(t, ok, "completed report has no report_md")
	assert.GreaterOrEqual(t, len(body), 1000, "report body too short")
	assert.NotEmpty(t, reportCitationRe.FindAllString(body, -1), "report cites no evidence")

	bib, ok := report["sources_bib"].(string)
	require.True(t, ok, "completed report has no sources_bib")
	assert.NotEmpty(t, bib)

	status := app.GetTaskStatus(t, taskID)
	assert.Equal(t, "simple", status["kind"])
	assert.Greater(t, status["evidence_count"].(float64), float64(0))
	assert.NotEmpty(t, status["sources_summary"])

	logs := app.GetLogs(t, taskID)
	assert.Equal(t, taskID, logs["task_id"])
	records := logs["logs"].([]interface{})
	require.NotEmpty(t, records)
	firstMsg := records[0].(map[string]interface{})["message"].(string)
	assert.Contains(t, firstMsg, "research started")

	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	providers := health["providers"].(map[string]interface{})
	assert.Equal(t, "mock", providers["text"])
	assert.Equal(t, "mock", providers["search"])
	assert.Equal(t, "memory", health["persistence"])
}

// ────────────────────────────────────────────────────────────
// Scenario 2: Deep Research Converges on the First Iteration
// ────────────────────────────────────────────────────────────

func TestE2E_DeepConvergence(t *testing.T) {
	sp := NewScriptedProvider()
	sp.AddCompletion(provider.RoleEvaluator, ProviderScriptEntry{Text: EvalJSON(0.9, nil, nil)})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitDeepResearch(t, map[string]interface{}{
		"query":          "lifecycle emissions of sodium ion batteries",
		"max_iterations": 3,
	})
	taskID := TaskID(t, resp)

	app.WaitForTaskStatus(t, taskID, "completed")

	// The trace holds the full event stream; one pass converged, so exactly
	// one iteration and one evaluation, and no refinement round.
	events := app.GetTraceEvents(t, taskID)
	types := traceTypes(events)
	assert.Equal(t, []string{
		"started", "planning", "iteration", "evidence", "evaluation",
		"report_generation", "completed",
	}, types)
	assertSeqsAscending(t, events)

	deep := app.GetDeepReport(t, taskID)
	summary := deep["research_summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["iterations"])
	metrics := deep["quality_metrics"].(map[string]interface{})
	assert.InDelta(t, 0.9, metrics["completion_score"].(float64), 1e-9)
}

// ────────────────────────────────────────────────────────────
// Scenario 3: Deep Research Exhausts Max Iterations
// ────────────────────────────────────────────────────────────

func TestE2E_MaxIterationsExhaustion(t *testing.T) {
	sp := NewScriptedProvider()
	// Three below-threshold evaluations; the first two offer refinements so
	// the loop keeps going until the iteration cap stops it.
	sp.AddCompletion(provider.RoleEvaluator, ProviderScriptEntry{Text: EvalJSON(0.4,
		[]string{"missing cost data"},
		[]string{"levelized storage cost studies", "deployment economics surveys"})})
	sp.AddCompletion(provider.RoleEvaluator, ProviderScriptEntry{Text: EvalJSON(0.5,
		[]string{"missing regional coverage"},
		[]string{"asia pacific deployment reports", "european grid operator filings"})})
	sp.AddCompletion(provider.RoleEvaluator, ProviderScriptEntry{Text: EvalJSON(0.6, nil, nil)})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitDeepResearch(t, map[string]interface{}{
		"query":                "grid storage deployment economics",
		"max_iterations":       3,
		"min_completion_score": 0.75,
	})
	taskID := TaskID(t, resp)

	app.WaitForTaskStatus(t, taskID, "completed")

	events := app.GetTraceEvents(t, taskID)
	types := traceTypes(events)
	assert.Equal(t, 3, countType(types, "iteration"))
	assert.Equal(t, 3, countType(types, "evaluation"))
	assert.Equal(t, 2, countType(types, "gap_analysis"))
	assert.Equal(t, 2, countType(types, "refinement"))
	assert.Equal(t, "report_generation", types[len(types)-2])
	assert.Equal(t, "completed", types[len(types)-1])
	assertSeqsAscending(t, events)

	deep := app.GetDeepReport(t, taskID)
	summary := deep["research_summary"].(map[string]interface{})
	assert.Equal(t, float64(3), summary["iterations"])
	assert.InDelta(t, 0.6, summary["quality_score"].(float64), 1e-9)
	assert.Len(t, summary["iteration_details"].([]interface{}), 3)

	// Refinements replaced the original sub-queries in later iterations.
	queries := sp.SearchQueries()
	assert.Contains(t, queries, "levelized storage cost studies")
	assert.Contains(t, queries, "asia pacific deployment reports")
}

// ────────────────────────────────────────────────────────────
// Scenario 4: Two Progress Observers, Late Joiner
// ────────────────────────────────────────────────────────────

func TestE2E_ProgressObservers(t *testing.T) {
	planGate := make(chan struct{})
	planBlocked := make(chan struct{}, 1)
	searchGate := make(chan struct{})
	searchBlocked := make(chan struct{}, 1)

	sp := NewScriptedProvider()
	sp.AddCompletion(provider.RolePlanner, ProviderScriptEntry{
		Text:    defaultPlanJSON,
		WaitCh:  planGate,
		OnBlock: planBlocked,
	})
	sp.AddSearch(ProviderScriptEntry{
		Hits: []provider.SearchResult{{
			URL:     "https://research.example.org/gated/1",
			Title:   "Gated source",
			Excerpt: "Observation released once the late observer has joined.",
		}},
		WaitCh:  searchGate,
		OnBlock: searchBlocked,
	})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitResearch(t, "observer ordering of progress streams")
	taskID := TaskID(t, resp)

	// First observer attaches while the planner is held; it sees everything
	// from planning on. The started event predates any observer and replay
	// is off, so nobody sees it.
	<-planBlocked
	early := app.ProgressSocket(t, taskID)
	_, err := early.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	close(planGate)

	// Second observer attaches while the first search is held; it has
	// missed planning and the iteration marker as well.
	<-searchBlocked
	late := app.ProgressSocket(t, taskID)
	_, err = late.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	close(searchGate)

	_, err = early.WaitForTerminal(10 * time.Second)
	require.NoError(t, err)
	_, err = late.WaitForTerminal(10 * time.Second)
	require.NoError(t, err)

	// Both connections close once the stream finishes.
	require.NoError(t, early.AwaitClosed(5*time.Second))
	require.NoError(t, late.AwaitClosed(5*time.Second))

	earlyTypes := early.EventTypes()
	assert.Equal(t, []string{
		"planning", "iteration", "evidence", "evaluation",
		"report_generation", "completed",
	}, earlyTypes)
	assert.NotContains(t, earlyTypes, "started")

	lateTypes := late.EventTypes()
	assert.Equal(t, []string{
		"evidence", "evaluation", "report_generation", "completed",
	}, lateTypes)

	// The late joiner's stream is exactly the tail of the early one: same
	// events, same sequence numbers, nothing reordered or duplicated.
	earlySeqs := eventSeqs(early.ProgressEvents())
	lateSeqs := eventSeqs(late.ProgressEvents())
	require.Less(t, len(lateSeqs), len(earlySeqs))
	assert.Equal(t, earlySeqs[len(earlySeqs)-len(lateSeqs):], lateSeqs)
	for i := 1; i < len(earlySeqs); i++ {
		assert.Greater(t, earlySeqs[i], earlySeqs[i-1])
	}
}

// ────────────────────────────────────────────────────────────
// Scenario 5: Duplicate Search Hits Deduplicate
// ────────────────────────────────────────────────────────────

func TestE2E_DuplicateHitsDedup(t *testing.T) {
	// Every sub-query returns the same article. The cheap profile stores raw
	// excerpts, so all three collapse onto one evidence item by content hash.
	shared := []provider.SearchResult{{
		URL:     "https://news.example.io/syndicated/storage-study",
		Title:   "Syndicated storage study",
		Excerpt: "The same wire story reprinted by every outlet, figures included.",
	}}
	sp := NewScriptedProvider()
	for i := 0; i < 3; i++ {
		sp.AddSearch(ProviderScriptEntry{Hits: shared})
	}

	cfg := defaultTestConfig()
	cfg.CheapProfile = true
	app := NewTestApp(t, WithProviderClient(sp), WithResearchConfig(cfg))

	resp := app.SubmitResearch(t, "syndicated reporting on storage economics")
	taskID := TaskID(t, resp)

	status := app.WaitForTaskStatus(t, taskID, "completed")
	assert.Equal(t, float64(1), status["evidence_count"])

	events := app.GetTraceEvents(t, taskID)
	for _, ev := range events {
		if ev["event_type"] == "evidence" {
			data := ev["data"].(map[string]interface{})
			assert.Equal(t, float64(1), data["new"])
			assert.Equal(t, float64(1), data["total"])
		}
	}

	deep := app.GetDeepReport(t, taskID)
	summary := deep["research_summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["total_evidence"])
	bib := deep["sources_bib"].(string)
	assert.Len(t, splitLines(bib), 1, "bibliography should list the single retained item")

	// Cheap profile: plan, evaluate, write, and nothing else; no completion
	// was spent condensing excerpts.
	assert.Equal(t, 3, sp.CompleteCalls())
}

// ────────────────────────────────────────────────────────────
// Scenario 6: Cancellation Mid-Run
// ────────────────────────────────────────────────────────────

func TestE2E_Cancellation(t *testing.T) {
	blocked := make(chan struct{}, 1)
	sp := NewScriptedProvider()
	sp.AddSearch(ProviderScriptEntry{BlockUntilCancelled: true, OnBlock: blocked})

	app := NewTestApp(t, WithProviderClient(sp))

	resp := app.SubmitDeepResearch(t, map[string]interface{}{
		"query": "long running retrieval behavior",
	})
	taskID := TaskID(t, resp)

	ws := app.ProgressSocket(t, taskID)
	_, err := ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)

	// Wait until a search is actually in flight before cancelling.
	<-blocked
	cancelResp := app.CancelTask(t, taskID)
	assert.Equal(t, taskID, cancelResp["task_id"])

	failed, err := ws.WaitForEventType("failed", 10*time.Second)
	require.NoError(t, err)
	data := failed.Parsed["data"].(map[string]interface{})
	assert.Equal(t, "cancelled", data["reason"])

	require.NoError(t, ws.AwaitClosed(5*time.Second))
	assert.Len(t, ws.EventsByType("failed"), 1)
	assert.Empty(t, ws.EventsByType("completed"))

	status := app.WaitForTaskStatus(t, taskID, "failed")
	assert.Equal(t, "cancelled", status["details"])

	// No report exists for the cancelled run.
	report := app.GetReport(t, taskID)
	assert.Equal(t, "failed", report["status"])
	assert.Equal(t, "cancelled", report["error_reason"])
	assert.NotContains(t, report, "report_md")
}

// ────────────────────────────────────────────────────────────
// Trace helpers
// ────────────────────────────────────────────────────────────

func traceTypes(events []map[string]interface{}) []string {
	var types []string
	for _, ev := range events {
		types = append(types, ev["event_type"].(string))
	}
	return types
}

func countType(types []string, want string) int {
	n := 0
	for _, tp := range types {
		if tp == want {
			n++
		}
	}
	return n
}

func assertSeqsAscending(t *testing.T, events []map[string]interface{}) {
	t.Helper()
	for i, ev := range events {
		assert.Equal(t, float64(i+1), ev["seq"].(float64), "trace seq gap at line %d", i)
	}
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
