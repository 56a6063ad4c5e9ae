// Package persistence provides the task store behind the service: a durable
// PostgreSQL backend, an in-memory fallback, and a degrading wrapper that
// swaps to the fallback when the durable backend fails mid-flight.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/delver-project/delver/pkg/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned on unique violations, such as duplicate
	// task IDs or a second report for the same task.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrTerminalState is returned when a status update would transition a
	// task out of completed or failed.
	ErrTerminalState = errors.New("task is in a terminal state")
)

// Backend mode identifiers reported by the health endpoint.
const (
	ModeDurable = "durable"
	ModeMemory  = "memory"
)

// Store is the persistence contract shared by the durable and in-memory
// backends. Same-state status updates are idempotent; transitions out of a
// terminal state are rejected with ErrTerminalState.
type Store interface {
	CreateTask(ctx context.Context, task *models.ResearchTask) error
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, extras models.StatusExtras) error
	GetTask(ctx context.Context, id string) (*models.ResearchTask, error)
	ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.ResearchTask, int, error)

	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, taskID string) (*models.Report, error)

	AppendLog(ctx context.Context, rec models.LogRecord) error
	// ListLogs returns the task's log records in timestamp order. A non-nil
	// since restricts the result to records strictly after that instant.
	ListLogs(ctx context.Context, taskID string, since *time.Time) ([]models.LogRecord, error)

	// Mode identifies the active backend for health reporting.
	Mode() string
	// Degraded reports whether the durable backend was abandoned mid-flight.
	Degraded() bool

	Close() error
}

// Listing defaults; page is 1-based.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return page, pageSize
}

// isContractError distinguishes contract-level outcomes from backend
// failures. Only the latter should trigger degradation.
func isContractError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrTerminalState)
}
