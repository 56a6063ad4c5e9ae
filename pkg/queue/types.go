// Package queue provides the in-process task pool that executes accepted
// research tasks with bounded concurrency.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/delver-project/delver/pkg/models"
)

// Sentinel errors for pool operations.
var (
	// ErrQueueFull indicates the submission backlog is at capacity.
	ErrQueueFull = errors.New("task queue full")

	// ErrPoolStopped indicates the pool is shutting down and no longer
	// accepts submissions.
	ErrPoolStopped = errors.New("task pool stopped")
)

// TaskExecutor runs one accepted task to a terminal state.
//
// The executor owns the ENTIRE task lifecycle internally:
//   - Publishes every progress event for the run
//   - Persists status transitions, logs, and the final report
//   - Always lands the task in a terminal status, even on cancellation
//
// The worker only handles: dequeuing, the run deadline, cancel registration,
// and its own health bookkeeping.
type TaskExecutor interface {
	Run(ctx context.Context, task *models.ResearchTask)
}

// TaskRegistry tracks cancel functions for tasks a worker has picked up, so
// cancellation requests can reach a run in flight.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// PoolHealth contains health information for the entire task pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveWorkers int            `json:"active_workers"`
	ActiveTasks   int            `json:"active_tasks"`
	QueueDepth    int            `json:"queue_depth"`
	QueueCapacity int            `json:"queue_capacity"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
