// Package models defines the domain types shared across the service:
// research tasks, evidence, evaluation results, progress events, reports,
// and task logs.
package models

import "time"

// TaskKind distinguishes single-pass research from iterative deep research.
type TaskKind string

const (
	TaskKindSimple TaskKind = "simple"
	TaskKindDeep   TaskKind = "deep"
)

// TaskStatus is the lifecycle state of a research task.
type TaskStatus string

const (
	TaskStatusAccepted  TaskStatus = "accepted"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// IsTerminal reports whether no further status transitions are allowed.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// ValidTaskStatus reports whether s is a known status value.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusAccepted, TaskStatusRunning, TaskStatusCompleted, TaskStatusFailed:
		return true
	}
	return false
}

// DetailsDegraded marks tasks that finished after the durable backend
// degraded to the in-memory fallback mid-task.
const DetailsDegraded = "completed-degraded"

// TaskConfig is the per-task configuration snapshot taken at intake.
// It never changes after the task is accepted.
type TaskConfig struct {
	MaxIterations      int     `json:"max_iterations"`
	MinCompletionScore float64 `json:"min_completion_score"`
	Budget             int     `json:"budget"`
}

// ResearchTask is the persisted lifecycle record of one research request.
// It is created by intake and mutated only by the owning orchestrator;
// terminal states are immutable.
type ResearchTask struct {
	ID             string     `json:"task_id"`
	Query          string     `json:"query"`
	Kind           TaskKind   `json:"kind"`
	Config         TaskConfig `json:"config"`
	Status         TaskStatus `json:"status"`
	Details        string     `json:"details,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	EvidenceCount  int        `json:"evidence_count,omitempty"`
	SourcesSummary string     `json:"sources_summary,omitempty"`
}

// TaskFilters selects and pages task listings. Zero values mean "no filter".
type TaskFilters struct {
	Status   TaskStatus
	Page     int
	PageSize int
}

// StatusExtras carries the optional fields an orchestrator may set alongside
// a status transition.
type StatusExtras struct {
	Details        string
	StartedAt      *time.Time
	CompletedAt    *time.Time
	EvidenceCount  *int
	SourcesSummary string
}

// SubTask is one decomposition leaf of the original query. Sub-tasks live
// only in memory for the duration of a single orchestration.
type SubTask struct {
	ID          string  `json:"id"`
	Priority    float64 `json:"priority"`
	Description string  `json:"description"`
	Iteration   int     `json:"iteration"`
}
