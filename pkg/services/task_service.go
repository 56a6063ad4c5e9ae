package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/research"
)

const (
	// maxQueryLen bounds the normalized query; anything longer is almost
	// certainly a pasted document, not a research question.
	maxQueryLen = 2000

	// defaultDeepIterations applies when a deep request omits max_iterations.
	defaultDeepIterations = 3

	// settleWriteTimeout bounds status writes made off the request context.
	settleWriteTimeout = 5 * time.Second
)

// TaskSubmitter is the slice of the task pool the service depends on.
type TaskSubmitter interface {
	Submit(task *models.ResearchTask) error
	Cancel(taskID string) bool
}

// SubmitTaskInput contains the domain-level data needed to accept a task.
// Transformed from the HTTP request by the handler; range validation has
// already happened there, so zero values mean "not provided".
type SubmitTaskInput struct {
	Query              string
	Kind               models.TaskKind
	MaxIterations      int
	MinCompletionScore float64
	Budget             int
}

// TaskService handles research intake and task lifecycle queries.
type TaskService struct {
	store persistence.Store
	pool  TaskSubmitter
	cfg   config.ResearchConfig
}

// NewTaskService creates a new TaskService.
func NewTaskService(store persistence.Store, pool TaskSubmitter, cfg config.ResearchConfig) *TaskService {
	if store == nil {
		panic("NewTaskService: store must not be nil")
	}
	if pool == nil {
		panic("NewTaskService: pool must not be nil")
	}
	return &TaskService{
		store: store,
		pool:  pool,
		cfg:   cfg,
	}
}

// SubmitTask accepts a research request: it normalizes the query, snapshots
// the task configuration, persists the accepted row, and enqueues the run.
// The returned task is in "accepted" status.
func (s *TaskService) SubmitTask(ctx context.Context, input SubmitTaskInput) (*models.ResearchTask, error) {
	query := normalizeQuery(input.Query)
	if query == "" {
		return nil, NewValidationError("query", "query is required")
	}
	if len(query) > maxQueryLen {
		return nil, NewValidationError("query", fmt.Sprintf("query exceeds %d characters", maxQueryLen))
	}

	task := &models.ResearchTask{
		ID:     uuid.New().String(),
		Query:  query,
		Kind:   input.Kind,
		Config: s.taskConfig(input),
		Status: models.TaskStatusAccepted,
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.pool.Submit(task); err != nil {
		s.settleUnscheduled(task.ID, err)
		return nil, fmt.Errorf("failed to schedule task: %w", err)
	}

	return task, nil
}

// taskConfig snapshots the effective configuration for the task. Simple
// tasks always run one iteration on the small budget; deep tasks take the
// request values and fall back to defaults for anything not provided.
func (s *TaskService) taskConfig(input SubmitTaskInput) models.TaskConfig {
	if input.Kind == models.TaskKindSimple {
		return models.TaskConfig{
			MaxIterations:      1,
			MinCompletionScore: s.cfg.QualityThreshold,
			Budget:             s.cfg.SimpleBudget,
		}
	}

	cfg := models.TaskConfig{
		MaxIterations:      input.MaxIterations,
		MinCompletionScore: input.MinCompletionScore,
		Budget:             input.Budget,
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaultDeepIterations
	}
	if cfg.MinCompletionScore == 0 {
		cfg.MinCompletionScore = s.cfg.QualityThreshold
	}
	if cfg.Budget == 0 {
		cfg.Budget = s.cfg.DefaultDeepBudget
	}
	return cfg
}

// settleUnscheduled marks a task that was persisted but never made it into
// the pool. Best-effort: the row already exists, so an intake error response
// must not leave it looking runnable forever.
func (s *TaskService) settleUnscheduled(taskID string, cause error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), settleWriteTimeout)
	defer cancel()

	now := time.Now().UTC()
	extras := models.StatusExtras{
		Details:     fmt.Sprintf("not scheduled: %v", cause),
		CompletedAt: &now,
	}
	if err := s.store.UpdateTaskStatus(writeCtx, taskID, models.TaskStatusFailed, extras); err != nil {
		slog.Error("Failed to settle unscheduled task", "task_id", taskID, "error", err)
	}
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*models.ResearchTask, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks lists tasks with filtering and pagination, newest first.
// The second return value is the total match count before paging.
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.ResearchTask, int, error) {
	if filters.Status != "" && !models.ValidTaskStatus(string(filters.Status)) {
		return nil, 0, NewValidationError("status", fmt.Sprintf("unknown status '%s'", filters.Status))
	}

	tasks, total, err := s.store.ListTasks(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetLogs returns a task's log records in timestamp order. A non-nil since
// restricts the result to records strictly after that instant.
func (s *TaskService) GetLogs(ctx context.Context, taskID string, since *time.Time) ([]models.LogRecord, error) {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return nil, err
	}

	logs, err := s.store.ListLogs(ctx, taskID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	return logs, nil
}

// GetReport returns the task together with its report. The report is nil
// unless the task completed; a completed task whose report write was lost
// also comes back with a nil report rather than an error.
func (s *TaskService) GetReport(ctx context.Context, taskID string) (*models.ResearchTask, *models.Report, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	if task.Status != models.TaskStatusCompleted {
		return task, nil, nil
	}

	report, err := s.store.GetReport(ctx, taskID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return task, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to get report: %w", err)
	}
	return task, report, nil
}

// CancelTask requests cancellation of an accepted or running task. Running
// and queued tasks are cancelled through the pool; rows the pool does not
// know (left over from a previous process life) are settled directly.
func (s *TaskService) CancelTask(ctx context.Context, taskID string) error {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if task.Status.IsTerminal() {
		return ErrTaskTerminal
	}

	if s.pool.Cancel(taskID) {
		slog.Info("Task cancellation requested", "task_id", taskID)
		return nil
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), settleWriteTimeout)
	defer cancel()

	now := time.Now().UTC()
	extras := models.StatusExtras{
		Details:     research.ReasonCancelled,
		CompletedAt: &now,
	}
	err = s.store.UpdateTaskStatus(writeCtx, taskID, models.TaskStatusFailed, extras)
	switch {
	case errors.Is(err, persistence.ErrTerminalState):
		// The run finished between the lookup and the cancel.
		return ErrTaskTerminal
	case errors.Is(err, persistence.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("failed to cancel task: %w", err)
	}

	_ = s.store.AppendLog(writeCtx, models.LogRecord{
		TaskID:    taskID,
		Level:     models.LogInfo,
		Message:   "cancelled before the run started",
		Timestamp: now,
	})
	slog.Info("Unscheduled task cancelled", "task_id", taskID)
	return nil
}

// normalizeQuery trims and collapses all interior whitespace to single
// spaces, so hashing and prompting see one canonical form of the question.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
