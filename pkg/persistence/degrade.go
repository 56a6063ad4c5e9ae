package persistence

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/delver-project/delver/pkg/models"
)

// DegradingStore pairs the durable backend with an in-memory fallback.
// Every successful durable write is shadowed to the fallback; the first
// durable write failure swaps all traffic to the fallback for the rest of
// the process lifetime. The swap is one-way: reconnecting would reorder
// writes behind already-acknowledged fallback state.
type DegradingStore struct {
	durable  Store
	fallback *MemoryStore
	degraded atomic.Bool
}

var _ Store = (*DegradingStore)(nil)

// NewDegradingStore wraps durable with fallback as its degradation target.
func NewDegradingStore(durable Store, fallback *MemoryStore) *DegradingStore {
	return &DegradingStore{
		durable:  durable,
		fallback: fallback,
	}
}

// write runs op against the durable backend, shadows it to the fallback on
// success, and swaps to the fallback on a backend failure. Contract errors
// (ErrNotFound, ErrAlreadyExists, ErrTerminalState) pass through without
// degrading.
func (d *DegradingStore) write(op func(Store) error) error {
	if !d.degraded.Load() {
		err := op(d.durable)
		switch {
		case err == nil:
			_ = op(d.fallback)
			return nil
		case isContractError(err):
			return err
		default:
			d.degrade(err)
		}
	}
	return op(d.fallback)
}

func (d *DegradingStore) degrade(err error) {
	if d.degraded.CompareAndSwap(false, true) {
		slog.Warn("Durable persistence failed, degrading to in-memory store for the rest of the process",
			"error", err)
	}
}

func (d *DegradingStore) CreateTask(ctx context.Context, task *models.ResearchTask) error {
	return d.write(func(s Store) error { return s.CreateTask(ctx, task) })
}

func (d *DegradingStore) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus, extras models.StatusExtras) error {
	return d.write(func(s Store) error { return s.UpdateTaskStatus(ctx, id, status, extras) })
}

func (d *DegradingStore) GetTask(ctx context.Context, id string) (*models.ResearchTask, error) {
	if d.degraded.Load() {
		return d.fallback.GetTask(ctx, id)
	}
	return d.durable.GetTask(ctx, id)
}

func (d *DegradingStore) ListTasks(ctx context.Context, filters models.TaskFilters) ([]*models.ResearchTask, int, error) {
	if d.degraded.Load() {
		return d.fallback.ListTasks(ctx, filters)
	}
	return d.durable.ListTasks(ctx, filters)
}

func (d *DegradingStore) CreateReport(ctx context.Context, report *models.Report) error {
	return d.write(func(s Store) error { return s.CreateReport(ctx, report) })
}

func (d *DegradingStore) GetReport(ctx context.Context, taskID string) (*models.Report, error) {
	if d.degraded.Load() {
		return d.fallback.GetReport(ctx, taskID)
	}
	return d.durable.GetReport(ctx, taskID)
}

func (d *DegradingStore) AppendLog(ctx context.Context, rec models.LogRecord) error {
	return d.write(func(s Store) error { return s.AppendLog(ctx, rec) })
}

func (d *DegradingStore) ListLogs(ctx context.Context, taskID string, since *time.Time) ([]models.LogRecord, error) {
	if d.degraded.Load() {
		return d.fallback.ListLogs(ctx, taskID, since)
	}
	return d.durable.ListLogs(ctx, taskID, since)
}

func (d *DegradingStore) Mode() string {
	if d.degraded.Load() {
		return ModeMemory
	}
	return d.durable.Mode()
}

func (d *DegradingStore) Degraded() bool { return d.degraded.Load() }

func (d *DegradingStore) Close() error {
	err := d.durable.Close()
	if ferr := d.fallback.Close(); err == nil {
		err = ferr
	}
	return err
}
