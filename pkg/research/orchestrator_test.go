package research

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/evidence"
	"github.com/delver-project/delver/pkg/events"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/provider"
)

type runHarness struct {
	orc   *Orchestrator
	store persistence.Store
	bus   *events.Bus
	sp    *scriptedProvider
}

func newRunHarness(sp *scriptedProvider) *runHarness {
	store := persistence.NewMemoryStore()
	bus := events.NewBus(16)
	return &runHarness{
		orc:   NewOrchestrator(store, bus, sp, evidence.NewScorer(nil), testResearchConfig()),
		store: store,
		bus:   bus,
		sp:    sp,
	}
}

// runTask executes the task synchronously and returns every event the
// observer saw, terminal included.
func (h *runHarness) runTask(t *testing.T, ctx context.Context, task *models.ResearchTask) []models.ProgressEvent {
	t.Helper()
	require.NoError(t, h.store.CreateTask(context.Background(), task))
	obs, err := h.bus.Subscribe(task.ID)
	require.NoError(t, err)

	h.orc.Run(ctx, task)

	var got []models.ProgressEvent
	for ev := range obs.Events() {
		got = append(got, ev)
	}
	return got
}

func kindsOf(evs []models.ProgressEvent) []models.EventKind {
	out := make([]models.EventKind, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Kind)
	}
	return out
}

func deepTask(id string, budget int) *models.ResearchTask {
	return &models.ResearchTask{
		ID:     id,
		Query:  "solid state battery commercialization",
		Kind:   models.TaskKindDeep,
		Status: models.TaskStatusAccepted,
		Config: models.TaskConfig{MaxIterations: 3, MinCompletionScore: 0.75, Budget: budget},
	}
}

func TestOrchestrator_ConvergesFirstIteration(t *testing.T) {
	h := newRunHarness(newScriptedProvider())
	task := deepTask("orc-converge", 60)

	evs := h.runTask(t, context.Background(), task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))

	for i, ev := range evs {
		assert.Equal(t, uint64(i+1), ev.Seq)
		assert.Equal(t, task.ID, ev.TaskID)
	}

	started, ok := evs[0].Payload.(models.StartedPayload)
	require.True(t, ok)
	assert.Equal(t, task.Query, started.Query)
	assert.Equal(t, models.TaskKindDeep, started.Kind)

	assert.Equal(t, models.PlanningPayload{SubTasks: 3}, evs[1].Payload)
	assert.Equal(t, models.IterationPayload{Iteration: 1, MaxIterations: 3}, evs[2].Payload)
	assert.Equal(t, models.EvidencePayload{New: 9, Total: 9}, evs[3].Payload)
	assert.Equal(t, models.EvaluationPayload{Score: 0.9, Level: models.LevelComprehensive}, evs[4].Payload)
	assert.Equal(t, models.ReportGenerationPayload{EvidenceTotal: 9}, evs[5].Payload)

	completed, ok := evs[6].Payload.(models.CompletedPayload)
	require.True(t, ok)
	assert.Equal(t, 0.9, completed.Score)
	assert.Equal(t, 9, completed.EvidenceCount)
	assert.GreaterOrEqual(t, completed.DurationMS, int64(0))

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, row.Status)
	assert.Empty(t, row.Details)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.CompletedAt)
	assert.Equal(t, 9, row.EvidenceCount)
	assert.Contains(t, row.SourcesSummary, "research.example.org")

	report, err := h.store.GetReport(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Contains(t, report.Markdown, "# Research Report")
	assert.Contains(t, report.Markdown, "## Sources")
	assert.Contains(t, report.Markdown, "[S1-1]")
	assert.Contains(t, report.Bibliography, "[S1-1]")
	require.NotNil(t, report.Summary)
	assert.Equal(t, 1, report.Summary.Iterations)
	assert.Equal(t, 9, report.Summary.TotalEvidence)
	assert.Equal(t, 0.9, report.Summary.QualityScore)
	assert.NotEmpty(t, report.Summary.KeyFindings)
	require.NotNil(t, report.Metrics)
	assert.Equal(t, 9, report.Metrics.EvidenceCount)
	assert.Greater(t, report.Metrics.EvidenceQualityMean, 0.0)
	assert.GreaterOrEqual(t, report.Metrics.EvidenceQualityMax, report.Metrics.EvidenceQualityMin)

	logs, err := h.store.ListLogs(context.Background(), task.ID, nil)
	require.NoError(t, err)
	var messages []string
	for _, rec := range logs {
		messages = append(messages, rec.Message)
	}
	assert.Contains(t, messages, "deep research started")
	assert.Contains(t, messages, "planned 3 sub-tasks")
	assert.Contains(t, messages, "converged at score 0.90")
}

func TestOrchestrator_RefinesThenConverges(t *testing.T) {
	sp := newScriptedProvider()
	evalCall := 0
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		if req.Role == provider.RoleEvaluator {
			evalCall++
			if evalCall == 1 {
				return evalJSON(0.55, []string{"missing recent data"}, []string{"latest pilot production", "cost curve analysis"}), nil
			}
			return evalJSON(0.88, nil, nil), nil
		}
		return defaultCompletion(req)
	}
	h := newRunHarness(sp)
	task := deepTask("orc-refine", 80)

	evs := h.runTask(t, context.Background(), task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventGapAnalysis,
		models.EventRefinement,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))

	assert.Equal(t, models.GapAnalysisPayload{Gaps: []string{"missing recent data"}}, evs[5].Payload)
	assert.Equal(t, models.RefinementPayload{Count: 2}, evs[6].Payload)
	assert.Equal(t, models.IterationPayload{Iteration: 2, MaxIterations: 3}, evs[7].Payload)

	report, err := h.store.GetReport(context.Background(), task.ID)
	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Equal(t, 2, report.Summary.Iterations)
	require.Len(t, report.Summary.IterationDetails, 2)
	assert.Equal(t, models.IterationDetail{
		Iteration: 1, QueriesRun: 3, EvidenceAdded: 9, Score: 0.55, GapsFound: 1,
	}, report.Summary.IterationDetails[0])
	assert.Equal(t, models.IterationDetail{
		Iteration: 2, QueriesRun: 2, EvidenceAdded: 6, Score: 0.88, GapsFound: 0,
	}, report.Summary.IterationDetails[1])

	// Refinement sub-queries continue the citation ordinal sequence.
	assert.Contains(t, report.Bibliography, "[S4-1]")
	assert.Contains(t, report.Bibliography, "[S5-1]")
}

func TestOrchestrator_MaxIterationsExhausted(t *testing.T) {
	sp := newScriptedProvider()
	evalCall := 0
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		if req.Role == provider.RoleEvaluator {
			evalCall++
			switch evalCall {
			case 1:
				return evalJSON(0.4, []string{"cost data is thin"},
					[]string{"pilot line yield data", "cost per kwh trajectory"}), nil
			case 2:
				return evalJSON(0.5, []string{"no oem perspective"},
					[]string{"oem qualification timelines", "electrolyte supplier capacity"}), nil
			default:
				return evalJSON(0.6, []string{"still short of target"},
					[]string{"vendor roadmap interviews"}), nil
			}
		}
		return defaultCompletion(req)
	}
	h := newRunHarness(sp)
	task := deepTask("orc-exhaust", 60)

	evs := h.runTask(t, context.Background(), task)

	// The third evaluation stays below threshold, but k has reached the cap,
	// so the run writes the report instead of refining again.
	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventGapAnalysis,
		models.EventRefinement,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventGapAnalysis,
		models.EventRefinement,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))

	assert.Equal(t, models.IterationPayload{Iteration: 3, MaxIterations: 3}, evs[12].Payload)
	assert.Equal(t, models.EvaluationPayload{Score: 0.6, Level: models.LevelPartial}, evs[14].Payload)

	completed := evs[16].Payload.(models.CompletedPayload)
	assert.Equal(t, 0.6, completed.Score)
	assert.Equal(t, 21, completed.EvidenceCount)

	report, err := h.store.GetReport(context.Background(), task.ID)
	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Equal(t, 3, report.Summary.Iterations)
	require.Len(t, report.Summary.IterationDetails, 3)
	assert.Equal(t, models.IterationDetail{
		Iteration: 3, QueriesRun: 2, EvidenceAdded: 6, Score: 0.6, GapsFound: 1,
	}, report.Summary.IterationDetails[2])
}

func TestOrchestrator_ZeroBudgetGoesStraightToWriting(t *testing.T) {
	h := newRunHarness(newScriptedProvider())
	task := deepTask("orc-zero-budget", 0)

	evs := h.runTask(t, context.Background(), task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))

	completed := evs[3].Payload.(models.CompletedPayload)
	assert.Equal(t, 0.0, completed.Score)
	assert.Equal(t, 0, completed.EvidenceCount)

	report, err := h.store.GetReport(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Bibliography)
	assert.Equal(t, 0, report.Summary.Iterations)
	assert.Equal(t, 0, report.Metrics.EvidenceCount)
}

func TestOrchestrator_UnproductiveIterationWrites(t *testing.T) {
	sp := newScriptedProvider()
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		return nil, nil
	}
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		if req.Role == provider.RoleEvaluator {
			return evalJSON(0.3, []string{"no evidence at all"}, []string{"try other phrasing"}), nil
		}
		return defaultCompletion(req)
	}
	h := newRunHarness(sp)
	task := deepTask("orc-unproductive", 60)

	evs := h.runTask(t, context.Background(), task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))
	assert.Equal(t, models.EvidencePayload{New: 0, Total: 0}, evs[3].Payload)

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, row.Status)
	assert.Equal(t, 0, row.EvidenceCount)
}

func TestOrchestrator_CancelledBeforePlanning(t *testing.T) {
	h := newRunHarness(newScriptedProvider())
	task := deepTask("orc-cancelled", 60)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	evs := h.runTask(t, ctx, task)

	require.Equal(t, []models.EventKind{models.EventStarted, models.EventFailed}, kindsOf(evs))
	assert.Equal(t, models.FailedPayload{Reason: ReasonCancelled}, evs[1].Payload)

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusFailed, row.Status)
	assert.Equal(t, ReasonCancelled, row.Details)
	assert.NotNil(t, row.CompletedAt)

	_, err = h.store.GetReport(context.Background(), task.ID)
	require.ErrorIs(t, err, persistence.ErrNotFound)
}

func TestOrchestrator_CancelMidIteration(t *testing.T) {
	sp := newScriptedProvider()
	ctx, cancel := context.WithCancel(context.Background())
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		cancel()
		return nil, context.Canceled
	}
	h := newRunHarness(sp)
	task := deepTask("orc-cancel-mid", 60)

	evs := h.runTask(t, ctx, task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventFailed,
	}, kindsOf(evs))
	assert.Equal(t, models.FailedPayload{Reason: ReasonCancelled}, evs[3].Payload)
}

func TestOrchestrator_DeadlineExceeded(t *testing.T) {
	h := newRunHarness(newScriptedProvider())
	task := deepTask("orc-deadline", 60)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Millisecond))
	defer cancel()
	evs := h.runTask(t, ctx, task)

	require.Equal(t, []models.EventKind{models.EventStarted, models.EventFailed}, kindsOf(evs))
	assert.Equal(t, models.FailedPayload{Reason: ReasonDeadlineExceeded}, evs[1].Payload)

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, ReasonDeadlineExceeded, row.Details)
}

func TestOrchestrator_WriterFailureFailsTask(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		if req.Role == provider.RoleWriter {
			return "", &provider.TransportError{Capability: "complete-text", Status: 502, Err: fmt.Errorf("bad gateway")}
		}
		return defaultCompletion(req)
	}
	h := newRunHarness(sp)
	task := deepTask("orc-writer-fail", 60)

	evs := h.runTask(t, context.Background(), task)

	kinds := kindsOf(evs)
	require.Equal(t, models.EventFailed, kinds[len(kinds)-1])
	assert.Contains(t, kinds, models.EventReportGeneration)
	assert.Equal(t, models.FailedPayload{Reason: ReasonProviderError}, evs[len(evs)-1].Payload)

	_, err := h.store.GetReport(context.Background(), task.ID)
	require.ErrorIs(t, err, persistence.ErrNotFound)

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusFailed, row.Status)
	assert.Equal(t, ReasonProviderError, row.Details)
}

func TestOrchestrator_PanicIsRecovered(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		if req.Role == provider.RoleEvaluator {
			panic("scripted panic")
		}
		return defaultCompletion(req)
	}
	h := newRunHarness(sp)
	task := deepTask("orc-panic", 60)

	evs := h.runTask(t, context.Background(), task)

	kinds := kindsOf(evs)
	require.Equal(t, models.EventFailed, kinds[len(kinds)-1])
	assert.Equal(t, models.FailedPayload{Reason: ReasonInternal}, evs[len(evs)-1].Payload)

	row, err := h.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusFailed, row.Status)
}

// degradedStore reports a backend that swapped to its memory fallback.
type degradedStore struct {
	persistence.Store
}

func (d *degradedStore) Degraded() bool { return true }
func (d *degradedStore) Mode() string   { return persistence.ModeMemory }

func TestOrchestrator_DegradedMarker(t *testing.T) {
	store := &degradedStore{Store: persistence.NewMemoryStore()}
	bus := events.NewBus(0)
	orc := NewOrchestrator(store, bus, newScriptedProvider(), evidence.NewScorer(nil), testResearchConfig())
	task := deepTask("orc-degraded", 60)
	require.NoError(t, store.CreateTask(context.Background(), task))

	orc.Run(context.Background(), task)

	row, err := store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, row.Status)
	assert.Equal(t, models.DetailsDegraded, row.Details)
}

func TestOrchestrator_SimpleTaskSingleIteration(t *testing.T) {
	h := newRunHarness(newScriptedProvider())
	task := &models.ResearchTask{
		ID:     "orc-simple",
		Query:  "graphene production cost",
		Kind:   models.TaskKindSimple,
		Status: models.TaskStatusAccepted,
		Config: models.TaskConfig{MaxIterations: 1, MinCompletionScore: 0.75, Budget: 50},
	}

	evs := h.runTask(t, context.Background(), task)

	require.Equal(t, []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}, kindsOf(evs))
	assert.Equal(t, models.IterationPayload{Iteration: 1, MaxIterations: 1}, evs[2].Payload)

	report, err := h.store.GetReport(context.Background(), task.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Markdown)
}
