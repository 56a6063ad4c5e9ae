package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single pool worker that consumes tasks from the submission
// channel and runs them one at a time.
type Worker struct {
	id       string
	config   config.ResearchConfig
	executor TaskExecutor
	pool     TaskRegistry
	tasks    <-chan *models.ResearchTask
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a new pool worker.
func NewWorker(id string, cfg config.ResearchConfig, executor TaskExecutor, pool TaskRegistry, tasks <-chan *models.ResearchTask) *Worker {
	return &Worker{
		id:           id,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		tasks:        tasks,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// signalStop asks the worker to exit without waiting for it.
func (w *Worker) signalStop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.signalStop()
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		case task := <-w.tasks:
			// Re-check stop before starting: select picks ready cases at
			// random, so without this a stopping worker could keep draining
			// the backlog instead of exiting.
			select {
			case <-w.stopCh:
				log.Info("Worker shutting down, leaving dequeued task unstarted", "task_id", task.ID)
				return
			default:
			}
			w.process(ctx, task)
		}
	}
}

// process runs a single task with the configured deadline. The executor
// lands the task in a terminal status itself, including on timeout and
// cancellation, so there is no result to interpret here.
func (w *Worker) process(ctx context.Context, task *models.ResearchTask) {
	log := slog.With("task_id", task.ID, "worker_id", w.id)
	log.Info("Task picked up", "kind", task.Kind)

	w.setStatus(WorkerStatusWorking, task.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.DefaultTimeout)
	defer cancelTask()

	// Register cancel function for API-triggered cancellation. Registration
	// fires the cancel immediately when the task was cancelled while queued.
	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	started := time.Now()
	w.executor.Run(taskCtx, task)

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "duration", time.Since(started).Round(time.Millisecond))
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
