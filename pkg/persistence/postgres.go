package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/delver-project/delver/ent"
	"github.com/delver-project/delver/ent/report"
	"github.com/delver-project/delver/ent/researchtask"
	"github.com/delver-project/delver/ent/tasklog"
	"github.com/delver-project/delver/pkg/database"
	"github.com/delver-project/delver/pkg/models"
)

// PostgresStore is the durable backend: Ent entities over a pgx pool, with
// migrations applied by pkg/database at connect time.
type PostgresStore struct {
	client *database.Client
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore wraps a connected database client.
func NewPostgresStore(client *database.Client) *PostgresStore {
	return &PostgresStore{client: client}
}

func (s *PostgresStore) CreateTask(ctx context.Context, task *models.ResearchTask) error {
	builder := s.client.ResearchTask.Create().
		SetID(task.ID).
		SetQuery(task.Query).
		SetKind(researchtask.Kind(task.Kind)).
		SetStatus(researchtask.Status(task.Status)).
		SetMaxIterations(task.Config.MaxIterations).
		SetMinCompletionScore(task.Config.MinCompletionScore).
		SetBudget(task.Config.Budget)

	if task.Details != "" {
		builder.SetDetails(task.Details)
	}
	if !task.CreatedAt.IsZero() {
		builder.SetCreatedAt(task.CreatedAt)
	}
	if !task.UpdatedAt.IsZero() {
		builder.SetUpdatedAt(task.UpdatedAt)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, extras models.StatusExtras) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.ResearchTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	cur := models.TaskStatus(current.Status)
	if cur.IsTerminal() {
		if cur == status {
			return nil
		}
		return ErrTerminalState
	}

	update := tx.ResearchTask.UpdateOneID(id).
		SetStatus(researchtask.Status(status))
	if extras.Details != "" {
		update.SetDetails(extras.Details)
	}
	if extras.StartedAt != nil {
		update.SetStartedAt(*extras.StartedAt)
	}
	if extras.CompletedAt != nil {
		update.SetCompletedAt(*extras.CompletedAt)
	}
	if extras.EvidenceCount != nil {
		update.SetEvidenceCount(*extras.EvidenceCount)
	}
	if extras.SourcesSummary != "" {
		update.SetSourcesSummary(extras.SourcesSummary)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return tx.Commit()
}

func (s *PostgresStore) GetTask(ctx context.Context, id string) (*models.ResearchTask, error) {
	row, err := s.client.ResearchTask.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return taskFromRow(row), nil
}

func (s *PostgresStore) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.ResearchTask, int, error) {
	query := s.client.ResearchTask.Query()
	if filters.Status != "" {
		query = query.Where(researchtask.StatusEQ(researchtask.Status(filters.Status)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	rows, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(researchtask.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*models.ResearchTask, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, taskFromRow(row))
	}
	return tasks, total, nil
}

func (s *PostgresStore) CreateReport(ctx context.Context, rep *models.Report) error {
	exists, err := s.client.ResearchTask.Query().
		Where(researchtask.IDEQ(rep.TaskID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	builder := s.client.Report.Create().
		SetID(uuid.New().String()).
		SetTaskID(rep.TaskID).
		SetReportMd(rep.Markdown).
		SetSourcesBib(rep.Bibliography)
	if rep.Summary != nil {
		builder.SetResearchSummary(rep.Summary)
	}
	if rep.Metrics != nil {
		builder.SetQualityMetrics(rep.Metrics)
	}
	if !rep.CreatedAt.IsZero() {
		builder.SetCreatedAt(rep.CreatedAt)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetReport(ctx context.Context, taskID string) (*models.Report, error) {
	row, err := s.client.Report.Query().
		Where(report.TaskID(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &models.Report{
		TaskID:       row.TaskID,
		Markdown:     row.ReportMd,
		Bibliography: row.SourcesBib,
		Summary:      row.ResearchSummary,
		Metrics:      row.QualityMetrics,
		CreatedAt:    row.CreatedAt,
	}, nil
}

func (s *PostgresStore) AppendLog(ctx context.Context, rec models.LogRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	err := s.client.TaskLog.Create().
		SetTaskID(rec.TaskID).
		SetLevel(tasklog.Level(rec.Level)).
		SetMessage(rec.Message).
		SetTimestamp(ts).
		Exec(ctx)
	if err != nil {
		// The only constraint on task_logs is the task foreign key.
		if ent.IsConstraintError(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to append log: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListLogs(ctx context.Context, taskID string, since *time.Time) ([]models.LogRecord, error) {
	query := s.client.TaskLog.Query().
		Where(tasklog.TaskID(taskID))
	if since != nil {
		query = query.Where(tasklog.TimestampGT(*since))
	}

	rows, err := query.Order(ent.Asc(tasklog.FieldTimestamp)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	out := make([]models.LogRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.LogRecord{
			TaskID:    row.TaskID,
			Level:     models.LogLevel(row.Level),
			Message:   row.Message,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}

func (s *PostgresStore) Mode() string { return ModeDurable }

func (s *PostgresStore) Degraded() bool { return false }

func (s *PostgresStore) Close() error { return s.client.Close() }

// DB exposes the underlying pool for health checks.
func (s *PostgresStore) DB() *database.Client { return s.client }

func taskFromRow(row *ent.ResearchTask) *models.ResearchTask {
	return &models.ResearchTask{
		ID:    row.ID,
		Query: row.Query,
		Kind:  models.TaskKind(row.Kind),
		Config: models.TaskConfig{
			MaxIterations:      row.MaxIterations,
			MinCompletionScore: row.MinCompletionScore,
			Budget:             row.Budget,
		},
		Status:         models.TaskStatus(row.Status),
		Details:        row.Details,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
		EvidenceCount:  row.EvidenceCount,
		SourcesSummary: row.SourcesSummary,
	}
}
