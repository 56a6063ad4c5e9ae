// Package events carries per-task progress streams from the orchestrator to
// any number of observers and fans them out to WebSocket clients. Each task
// has a single publisher; observers attach and detach freely while the task
// runs.
package events

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/delver-project/delver/pkg/models"
)

// ErrTaskFinished is returned by Subscribe after a task's terminal event has
// been delivered and its stream released.
var ErrTaskFinished = errors.New("task progress stream finished")

const (
	// observerBuffer is each observer's channel capacity. An observer that
	// falls this far behind is dropped rather than stalling the publisher.
	observerBuffer = 64

	// tombstoneRetention bounds how long finished task IDs are remembered
	// for ErrTaskFinished reporting.
	tombstoneRetention = time.Hour
)

// Observer is one attached consumer of a task's progress stream.
type Observer struct {
	TaskID string
	id     string
	ch     chan models.ProgressEvent
	bus    *Bus
}

// Events returns the receive side of the observer's stream. The channel is
// closed after the terminal event or when the observer is dropped for
// falling behind.
func (o *Observer) Events() <-chan models.ProgressEvent { return o.ch }

// Close detaches the observer. Safe to call after the channel has closed.
func (o *Observer) Close() { o.bus.unsubscribe(o) }

type taskStream struct {
	seq       uint64
	observers map[string]*Observer
	recent    []models.ProgressEvent
}

func newTaskStream() *taskStream {
	return &taskStream{observers: make(map[string]*Observer)}
}

// Bus multiplexes progress events by task ID. Publish never blocks on a
// consumer; sequence numbers establish a total order per task.
type Bus struct {
	mu           sync.Mutex
	replayEvents int
	tap          func(models.ProgressEvent)
	streams      map[string]*taskStream
	finished     map[string]time.Time
	now          func() time.Time
}

// NewBus builds a bus that replays up to replayEvents recent events to late
// subscribers. Zero disables replay.
func NewBus(replayEvents int) *Bus {
	return &Bus{
		replayEvents: replayEvents,
		streams:      make(map[string]*taskStream),
		finished:     make(map[string]time.Time),
		now:          time.Now,
	}
}

// Tap registers a callback invoked synchronously for every accepted event,
// after sequence assignment and before observer fan-out. The trace recorder
// hooks in here so an exported trace never trails what observers have seen.
func (b *Bus) Tap(fn func(models.ProgressEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tap = fn
}

// Publish assigns the next per-task sequence number and delivers the event
// to every attached observer. A full observer buffer drops that observer;
// the publisher is never waited on. The terminal event closes all observer
// channels and releases the stream.
func (b *Bus) Publish(event models.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.streams[event.TaskID]
	if st == nil {
		if _, done := b.finished[event.TaskID]; done {
			slog.Warn("Dropping progress event published after terminal",
				"task_id", event.TaskID, "event_type", string(event.Kind))
			return
		}
		st = newTaskStream()
		b.streams[event.TaskID] = st
	}

	st.seq++
	event.Seq = st.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	if b.tap != nil {
		b.tap(event)
	}

	if b.replayEvents > 0 {
		st.recent = append(st.recent, event)
		if len(st.recent) > b.replayEvents {
			st.recent = st.recent[1:]
		}
	}

	for id, obs := range st.observers {
		select {
		case obs.ch <- event:
		default:
			delete(st.observers, id)
			close(obs.ch)
			slog.Warn("Dropping slow progress observer",
				"task_id", event.TaskID, "observer_id", id, "seq", event.Seq)
		}
	}

	if event.Kind.IsTerminal() {
		for id, obs := range st.observers {
			delete(st.observers, id)
			close(obs.ch)
		}
		delete(b.streams, event.TaskID)
		b.finished[event.TaskID] = b.now()
		b.pruneFinishedLocked()
	}
}

// Subscribe attaches a new observer to a task's stream. Late joiners receive
// up to the configured replay window flagged historical, then live events.
// Subscribing after the terminal event returns ErrTaskFinished.
func (b *Bus) Subscribe(taskID string) (*Observer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, done := b.finished[taskID]; done {
		return nil, ErrTaskFinished
	}

	st := b.streams[taskID]
	if st == nil {
		st = newTaskStream()
		b.streams[taskID] = st
	}

	obs := &Observer{
		TaskID: taskID,
		id:     uuid.NewString(),
		ch:     make(chan models.ProgressEvent, observerBuffer+len(st.recent)),
		bus:    b,
	}
	for _, ev := range st.recent {
		ev.Historical = true
		obs.ch <- ev
	}
	st.observers[obs.id] = obs
	return obs, nil
}

// ObserverCount reports how many observers a task currently has.
func (b *Bus) ObserverCount(taskID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.streams[taskID]
	if st == nil {
		return 0
	}
	return len(st.observers)
}

func (b *Bus) unsubscribe(o *Observer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.streams[o.TaskID]
	if st == nil {
		return
	}
	if _, attached := st.observers[o.id]; attached {
		delete(st.observers, o.id)
		close(o.ch)
	}
	// A stream nobody ever published to is subscriber-owned; drop it with
	// its last observer.
	if len(st.observers) == 0 && st.seq == 0 {
		delete(b.streams, o.TaskID)
	}
}

func (b *Bus) pruneFinishedLocked() {
	cutoff := b.now().Add(-tombstoneRetention)
	for id, at := range b.finished {
		if at.Before(cutoff) {
			delete(b.finished, id)
		}
	}
}
