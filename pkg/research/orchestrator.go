package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/evidence"
	"github.com/delver-project/delver/pkg/events"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/provider"
)

const (
	// maxRefinements caps how many follow-up queries one gap analysis may
	// feed into the next iteration.
	maxRefinements = 4

	// maxKeyFindings bounds the summary's key-finding list.
	maxKeyFindings = 5

	// criticalWriteTimeout bounds the background-context writes that must
	// land even after the task context is gone.
	criticalWriteTimeout = 10 * time.Second
)

// Failure reasons carried by failed events and task details.
const (
	ReasonCancelled        = "cancelled"
	ReasonDeadlineExceeded = "deadline-exceeded"
	ReasonProviderError    = "provider-error"
	ReasonInternal         = "internal"
)

// Orchestrator drives accepted tasks through the research state machine.
// It holds only shared dependencies; per-task state lives in the run, so
// concurrent Run calls are safe.
type Orchestrator struct {
	store  persistence.Store
	bus    *events.Bus
	client ProviderClient
	scorer *evidence.Scorer
	cfg    config.ResearchConfig
}

func NewOrchestrator(store persistence.Store, bus *events.Bus, client ProviderClient, scorer *evidence.Scorer, cfg config.ResearchConfig) *Orchestrator {
	return &Orchestrator{store: store, bus: bus, client: client, scorer: scorer, cfg: cfg}
}

// Run executes one task to a terminal state. It never returns an error and
// never lets a panic escape; every path ends with a single terminal event
// and a final task status write.
func (o *Orchestrator) Run(ctx context.Context, task *models.ResearchTask) {
	r := &taskRun{
		o:      o,
		task:   task,
		store:  evidence.NewStore(task.Query, o.scorer),
		budget: NewBudget(task.Config.Budget),
		start:  time.Now(),
	}
	r.planner = NewPlanner(o.client)
	r.researcher = NewResearcher(o.client, o.cfg, r.taskLog)
	r.evaluator = NewEvaluator(o.client, o.cfg)
	r.writer = NewWriter(o.client, r.taskLog)

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Research run panicked", "task_id", task.ID, "panic", rec)
			r.fail(ReasonInternal)
		}
	}()

	r.execute(ctx)
}

// taskRun is the mutable state of one orchestration.
type taskRun struct {
	o      *Orchestrator
	task   *models.ResearchTask
	store  *evidence.Store
	budget *Budget

	planner    *Planner
	researcher *Researcher
	evaluator  *Evaluator
	writer     *Writer

	start         time.Time
	iterationsRun int
	iterations    []models.IterationDetail
	lastScore     float64
	finished      bool
}

func (r *taskRun) execute(ctx context.Context) {
	task := r.task

	r.publish(models.EventStarted, fmt.Sprintf("Research accepted: %s", clip(task.Query, 120)),
		models.StartedPayload{Query: task.Query, Kind: task.Kind})
	now := time.Now().UTC()
	r.persistStatus(models.TaskStatusRunning, models.StatusExtras{StartedAt: &now})
	r.taskLog(models.LogInfo, fmt.Sprintf("%s research started", task.Kind))

	plan, err := r.planner.Plan(ctx, task.Query)
	if err != nil {
		r.failErr(err)
		return
	}
	r.publish(models.EventPlanning, fmt.Sprintf("Plan ready: %d sub-tasks", len(plan)),
		models.PlanningPayload{SubTasks: len(plan)})
	r.taskLog(models.LogInfo, fmt.Sprintf("planned %d sub-tasks", len(plan)))

	queries := plan
	kmax := task.Config.MaxIterations
	theta := task.Config.MinCompletionScore

	for k := 1; k <= kmax; k++ {
		if err := ctx.Err(); err != nil {
			r.failErr(err)
			return
		}
		if !r.budget.CanSearch() {
			r.taskLog(models.LogInfo, "budget exhausted before iteration, writing report")
			break
		}

		r.iterationsRun = k
		r.publish(models.EventIteration, fmt.Sprintf("Iteration %d of %d", k, kmax),
			models.IterationPayload{Iteration: k, MaxIterations: kmax})

		added, succeeded, err := r.researcher.Research(ctx, queries, r.store, r.budget)
		if err != nil {
			r.failErr(err)
			return
		}
		total := r.store.Count()
		r.publish(models.EventEvidence, fmt.Sprintf("Collected %d new evidence items (%d total)", added, total),
			models.EvidencePayload{New: added, Total: total})

		if r.budget.Remaining() <= 0 {
			r.taskLog(models.LogInfo, "budget exhausted, writing report")
			break
		}

		eval, err := r.evaluator.Evaluate(ctx, task.Query, r.store.Snapshot())
		if err != nil {
			r.failErr(err)
			return
		}
		r.lastScore = eval.Score
		r.publish(models.EventEvaluation, fmt.Sprintf("Evaluation score %.2f (%s)", eval.Score, eval.Level),
			models.EvaluationPayload{Score: eval.Score, Level: eval.Level})
		r.iterations = append(r.iterations, models.IterationDetail{
			Iteration:     k,
			QueriesRun:    len(queries),
			EvidenceAdded: added,
			Score:         eval.Score,
			GapsFound:     len(eval.Gaps),
		})

		if eval.Score >= theta {
			r.taskLog(models.LogInfo, fmt.Sprintf("converged at score %.2f", eval.Score))
			break
		}
		if k == kmax {
			break
		}
		if added == 0 && succeeded == 0 {
			r.taskLog(models.LogInfo, "unproductive iteration, writing report")
			break
		}

		r.publish(models.EventGapAnalysis, fmt.Sprintf("Identified %d coverage gaps", len(eval.Gaps)),
			models.GapAnalysisPayload{Gaps: eval.Gaps})
		refs := refinementQueries(eval.Refinements, k+1)
		if len(refs) == 0 {
			r.taskLog(models.LogInfo, "no refinements offered, writing report")
			break
		}
		r.publish(models.EventRefinement, fmt.Sprintf("Refined into %d follow-up queries", len(refs)),
			models.RefinementPayload{Count: len(refs)})
		queries = refs
	}

	if err := ctx.Err(); err != nil {
		r.failErr(err)
		return
	}
	r.complete(ctx)
}

func (r *taskRun) complete(ctx context.Context) {
	snapshot := r.store.Snapshot()
	total := len(snapshot)
	r.publish(models.EventReportGeneration, fmt.Sprintf("Generating report from %d evidence items", total),
		models.ReportGenerationPayload{EvidenceTotal: total})

	body, bib, err := r.writer.Write(ctx, r.task.Query, snapshot)
	if err != nil {
		r.failErr(err)
		return
	}

	duration := time.Since(r.start)
	report := &models.Report{
		TaskID:       r.task.ID,
		Markdown:     body,
		Bibliography: bib,
		Summary:      r.summary(snapshot, duration),
		Metrics:      r.metrics(snapshot, duration),
	}
	wctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()
	if err := r.o.store.CreateReport(wctx, report); err != nil {
		slog.Error("Failed to persist report", "task_id", r.task.ID, "error", err)
	}

	r.finished = true
	r.publish(models.EventCompleted, "Research completed", models.CompletedPayload{
		Score:         r.lastScore,
		EvidenceCount: total,
		DurationMS:    duration.Milliseconds(),
	})

	now := time.Now().UTC()
	extras := models.StatusExtras{
		CompletedAt:    &now,
		EvidenceCount:  &total,
		SourcesSummary: r.store.SourcesSummary(),
	}
	if r.o.store.Degraded() {
		extras.Details = models.DetailsDegraded
	}
	r.persistStatus(models.TaskStatusCompleted, extras)
	r.taskLog(models.LogInfo, fmt.Sprintf("completed with %d evidence items in %.1fs", total, duration.Seconds()))
}

func (r *taskRun) failErr(err error) {
	r.fail(failureReason(err))
}

// fail publishes the terminal failed event and moves the task row to
// failed. It is a no-op once the run has already reached a terminal state,
// which keeps the panic recovery path from double-finishing.
func (r *taskRun) fail(reason string) {
	if r.finished {
		return
	}
	r.finished = true

	r.publish(models.EventFailed, fmt.Sprintf("Research failed: %s", reason),
		models.FailedPayload{Reason: reason})

	now := time.Now().UTC()
	r.persistStatus(models.TaskStatusFailed, models.StatusExtras{
		Details:     reason,
		CompletedAt: &now,
	})
	r.taskLog(models.LogWarning, fmt.Sprintf("failed: %s", reason))
}

func (r *taskRun) publish(kind models.EventKind, message string, payload any) {
	r.o.bus.Publish(models.ProgressEvent{
		TaskID:  r.task.ID,
		Kind:    kind,
		Message: message,
		Payload: payload,
	})
}

// persistStatus writes a status transition on a background context so
// terminal states land even when the task context is cancelled.
func (r *taskRun) persistStatus(status models.TaskStatus, extras models.StatusExtras) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()
	if err := r.o.store.UpdateTaskStatus(ctx, r.task.ID, status, extras); err != nil {
		slog.Error("Failed to persist task status",
			"task_id", r.task.ID, "status", string(status), "error", err)
	}
}

// taskLog appends one lifecycle record; log write failures are swallowed.
func (r *taskRun) taskLog(level models.LogLevel, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()
	_ = r.o.store.AppendLog(ctx, models.LogRecord{
		TaskID:  r.task.ID,
		Level:   level,
		Message: message,
	})
}

func (r *taskRun) summary(snapshot []models.Evidence, duration time.Duration) *models.ResearchSummary {
	return &models.ResearchSummary{
		Query:            r.task.Query,
		Iterations:       r.iterationsRun,
		TotalEvidence:    len(snapshot),
		QualityScore:     r.lastScore,
		CompletionLevel:  models.LevelForScore(r.lastScore),
		ExecutionTime:    duration.Seconds(),
		KeyFindings:      keyFindings(snapshot),
		IterationDetails: r.iterations,
	}
}

func (r *taskRun) metrics(snapshot []models.Evidence, duration time.Duration) *models.QualityMetrics {
	m := &models.QualityMetrics{
		CompletionScore:  r.lastScore,
		CompletionLevel:  string(models.LevelForScore(r.lastScore)),
		EvidenceCount:    len(snapshot),
		ExecutionSeconds: duration.Seconds(),
	}
	if len(snapshot) == 0 {
		return m
	}

	qualities := make([]float64, len(snapshot))
	for i, item := range snapshot {
		qualities[i] = item.Quality
	}
	if mean, err := stats.Mean(qualities); err == nil {
		m.EvidenceQualityMean = mean
	}
	if lo, err := stats.Min(qualities); err == nil {
		m.EvidenceQualityMin = lo
	}
	if hi, err := stats.Max(qualities); err == nil {
		m.EvidenceQualityMax = hi
	}
	return m
}

// keyFindings picks the highest-quality excerpts for the summary.
func keyFindings(snapshot []models.Evidence) []string {
	ranked := make([]models.Evidence, len(snapshot))
	copy(ranked, snapshot)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quality > ranked[j].Quality })

	n := len(ranked)
	if n > maxKeyFindings {
		n = maxKeyFindings
	}
	findings := make([]string, 0, n)
	for _, item := range ranked[:n] {
		findings = append(findings, clip(item.Excerpt, 200))
	}
	return findings
}

// refinementQueries converts evaluator refinements into the next
// iteration's sub-queries; they replace the previous query set entirely.
func refinementQueries(refinements []string, iteration int) []models.SubTask {
	var out []models.SubTask
	seen := make(map[string]struct{})
	for _, ref := range refinements {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		key := strings.ToLower(ref)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, models.SubTask{
			ID:          fmt.Sprintf("R%d-%02d", iteration, len(out)+1),
			Priority:    1.0 - 0.1*float64(len(out)),
			Description: ref,
			Iteration:   iteration,
		})
		if len(out) == maxRefinements {
			break
		}
	}
	return out
}

func failureReason(err error) string {
	var transport *provider.TransportError
	var shape *provider.ShapeError
	switch {
	case errors.Is(err, context.Canceled):
		return ReasonCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonDeadlineExceeded
	case errors.As(err, &transport), errors.As(err, &shape):
		return ReasonProviderError
	default:
		return ReasonInternal
	}
}
