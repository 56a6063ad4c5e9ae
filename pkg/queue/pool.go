package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
)

// backlogFactor sizes the submission buffer relative to the worker count.
// Intake keeps accepting tasks while every worker is busy, up to this many
// queued runs per worker.
const backlogFactor = 4

// TaskPool runs accepted research tasks on a fixed set of workers. Each
// worker executes one task at a time, so the worker count is the concurrency
// limit. Tasks wait in a buffered channel between acceptance and execution.
type TaskPool struct {
	config   config.ResearchConfig
	executor TaskExecutor
	workers  []*Worker
	tasks    chan *models.ResearchTask
	stopCh   chan struct{}
	stopOnce sync.Once

	// Task cancel registry: task_id → cancel function for runs in flight,
	// plus bookkeeping for tasks still waiting in the channel.
	mu          sync.RWMutex
	activeTasks map[string]context.CancelFunc
	queued      map[string]struct{}
	tombstones  map[string]struct{}
	started     bool
}

// NewTaskPool creates a pool sized from the research configuration.
func NewTaskPool(cfg config.ResearchConfig, executor TaskExecutor) *TaskPool {
	return &TaskPool{
		config:      cfg,
		executor:    executor,
		workers:     make([]*Worker, 0, cfg.MaxConcurrentTasks),
		tasks:       make(chan *models.ResearchTask, cfg.MaxConcurrentTasks*backlogFactor),
		stopCh:      make(chan struct{}),
		activeTasks: make(map[string]context.CancelFunc),
		queued:      make(map[string]struct{}),
		tombstones:  make(map[string]struct{}),
	}
}

// Start spawns the worker goroutines.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *TaskPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Task pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting task pool",
		"worker_count", p.config.MaxConcurrentTasks,
		"queue_capacity", cap(p.tasks))

	for i := 0; i < p.config.MaxConcurrentTasks; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		worker := NewWorker(workerID, p.config, p.executor, p, p.tasks)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Task pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current tasks before exiting (graceful shutdown).
// Tasks still waiting in the queue are not started; they keep their
// accepted status in the store.
func (p *TaskPool) Stop() {
	slog.Info("Stopping task pool gracefully")

	p.stopOnce.Do(func() { close(p.stopCh) })

	active := p.getActiveTaskIDs()
	if len(active) > 0 {
		slog.Info("Waiting for running tasks to complete",
			"count", len(active),
			"task_ids", active)
	}
	if depth := p.queueDepth(); depth > 0 {
		slog.Warn("Abandoning queued tasks on shutdown", "count", depth)
	}

	// Signal every worker before waiting on any, so no worker picks up
	// fresh backlog while an earlier one finishes its run.
	for _, worker := range p.workers {
		worker.signalStop()
	}
	for _, worker := range p.workers {
		worker.Stop()
	}

	slog.Info("Task pool stopped gracefully")
}

// Submit enqueues an accepted task for execution. It never blocks: when the
// backlog is full it returns ErrQueueFull, and after Stop it returns
// ErrPoolStopped.
func (p *TaskPool) Submit(task *models.ResearchTask) error {
	select {
	case <-p.stopCh:
		return ErrPoolStopped
	default:
	}

	p.mu.Lock()
	p.queued[task.ID] = struct{}{}
	p.mu.Unlock()

	select {
	case p.tasks <- task:
		return nil
	default:
		p.mu.Lock()
		delete(p.queued, task.ID)
		p.mu.Unlock()
		return ErrQueueFull
	}
}

// RegisterTask stores a cancel function for manual cancellation. If the task
// was cancelled while it was still queued, the cancel function fires
// immediately so the run fails as cancelled before doing any work.
func (p *TaskPool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	delete(p.queued, taskID)
	p.activeTasks[taskID] = cancel
	_, tombstoned := p.tombstones[taskID]
	delete(p.tombstones, taskID)
	p.mu.Unlock()

	if tombstoned {
		cancel()
	}
}

// UnregisterTask removes the cancel function when processing ends.
func (p *TaskPool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// Cancel triggers context cancellation for a running task, or marks a queued
// task so its run is cancelled the moment a worker picks it up. Returns true
// if the task was known to the pool.
func (p *TaskPool) Cancel(taskID string) bool {
	p.mu.Lock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		p.mu.Unlock()
		cancel()
		return true
	}
	if _, ok := p.queued[taskID]; ok {
		p.tombstones[taskID] = struct{}{}
		p.mu.Unlock()
		return true
	}
	p.mu.Unlock()
	return false
}

// Health returns the current health status of the pool.
func (p *TaskPool) Health() *PoolHealth {
	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.mu.RLock()
	activeTasks := len(p.activeTasks)
	queueDepth := len(p.queued)
	p.mu.RUnlock()

	return &PoolHealth{
		IsHealthy:     p.started && len(p.workers) > 0,
		TotalWorkers:  len(p.workers),
		ActiveWorkers: activeWorkers,
		ActiveTasks:   activeTasks,
		QueueDepth:    queueDepth,
		QueueCapacity: cap(p.tasks),
		WorkerStats:   workerStats,
	}
}

// getActiveTaskIDs returns IDs of currently running tasks (for logging).
func (p *TaskPool) getActiveTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}

func (p *TaskPool) queueDepth() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.queued)
}
