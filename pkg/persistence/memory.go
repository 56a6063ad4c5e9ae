package persistence

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/delver-project/delver/pkg/models"
)

// MemoryStore is the process-local backend used when no database is
// configured and as the degradation fallback. Contents do not survive a
// restart; the health endpoint reports mode "memory" so operators know.
type MemoryStore struct {
	mu      sync.RWMutex
	tasks   map[string]*models.ResearchTask
	reports map[string]*models.Report
	logs    map[string][]models.LogRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:   make(map[string]*models.ResearchTask),
		reports: make(map[string]*models.Report),
		logs:    make(map[string][]models.LogRecord),
	}
}

func (s *MemoryStore) CreateTask(_ context.Context, task *models.ResearchTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; ok {
		return ErrAlreadyExists
	}

	cp := copyTask(task)
	now := time.Now()
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = now
	}
	if cp.UpdatedAt.IsZero() {
		cp.UpdatedAt = now
	}
	s.tasks[task.ID] = cp
	return nil
}

func (s *MemoryStore) UpdateTaskStatus(_ context.Context, id string, status models.TaskStatus, extras models.StatusExtras) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}

	if task.Status.IsTerminal() {
		if task.Status == status {
			return nil
		}
		return ErrTerminalState
	}

	task.Status = status
	task.UpdatedAt = time.Now()
	if extras.Details != "" {
		task.Details = extras.Details
	}
	if extras.StartedAt != nil {
		v := *extras.StartedAt
		task.StartedAt = &v
	}
	if extras.CompletedAt != nil {
		v := *extras.CompletedAt
		task.CompletedAt = &v
	}
	if extras.EvidenceCount != nil {
		task.EvidenceCount = *extras.EvidenceCount
	}
	if extras.SourcesSummary != "" {
		task.SourcesSummary = extras.SourcesSummary
	}
	return nil
}

func (s *MemoryStore) GetTask(_ context.Context, id string) (*models.ResearchTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyTask(task), nil
}

func (s *MemoryStore) ListTasks(_ context.Context, filters models.TaskFilters) ([]*models.ResearchTask, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*models.ResearchTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filters.Status != "" && task.Status != filters.Status {
			continue
		}
		matched = append(matched, task)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	start := (page - 1) * pageSize
	if start >= total {
		return []*models.ResearchTask{}, total, nil
	}
	end := min(start+pageSize, total)

	out := make([]*models.ResearchTask, 0, end-start)
	for _, task := range matched[start:end] {
		out = append(out, copyTask(task))
	}
	return out, total, nil
}

func (s *MemoryStore) CreateReport(_ context.Context, report *models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[report.TaskID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.reports[report.TaskID]; ok {
		return ErrAlreadyExists
	}

	cp := copyReport(report)
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	s.reports[report.TaskID] = cp
	return nil
}

func (s *MemoryStore) GetReport(_ context.Context, taskID string) (*models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.reports[taskID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyReport(report), nil
}

func (s *MemoryStore) AppendLog(_ context.Context, rec models.LogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[rec.TaskID]; !ok {
		return ErrNotFound
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	s.logs[rec.TaskID] = append(s.logs[rec.TaskID], rec)
	return nil
}

func (s *MemoryStore) ListLogs(_ context.Context, taskID string, since *time.Time) ([]models.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.logs[taskID]
	out := make([]models.LogRecord, 0, len(records))
	for _, rec := range records {
		if since != nil && !rec.Timestamp.After(*since) {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryStore) Mode() string { return ModeMemory }

func (s *MemoryStore) Degraded() bool { return false }

func (s *MemoryStore) Close() error { return nil }

func copyTask(t *models.ResearchTask) *models.ResearchTask {
	cp := *t
	if t.StartedAt != nil {
		v := *t.StartedAt
		cp.StartedAt = &v
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		cp.CompletedAt = &v
	}
	return &cp
}

func copyReport(r *models.Report) *models.Report {
	cp := *r
	if r.Summary != nil {
		v := *r.Summary
		v.KeyFindings = slices.Clone(r.Summary.KeyFindings)
		v.IterationDetails = slices.Clone(r.Summary.IterationDetails)
		cp.Summary = &v
	}
	if r.Metrics != nil {
		v := *r.Metrics
		cp.Metrics = &v
	}
	return &cp
}
