package events

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
)

func progressEvent(taskID string, kind models.EventKind, msg string) models.ProgressEvent {
	return models.ProgressEvent{TaskID: taskID, Kind: kind, Message: msg}
}

// drain collects buffered events without blocking.
func drain(obs *Observer) []models.ProgressEvent {
	var out []models.ProgressEvent
	for {
		select {
		case ev, ok := <-obs.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestBus_PublishAssignsSequence(t *testing.T) {
	bus := NewBus(0)
	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		bus.Publish(progressEvent("task-1", models.EventIteration, fmt.Sprintf("step %d", i)))
	}

	got := drain(obs)
	require.Len(t, got, 3)
	for i, ev := range got {
		assert.Equal(t, uint64(i+1), ev.Seq)
		assert.False(t, ev.Timestamp.IsZero())
		assert.False(t, ev.Historical)
	}
}

func TestBus_PerTaskSequencesAreIndependent(t *testing.T) {
	bus := NewBus(0)
	a, err := bus.Subscribe("task-a")
	require.NoError(t, err)
	b, err := bus.Subscribe("task-b")
	require.NoError(t, err)

	bus.Publish(progressEvent("task-a", models.EventStarted, "a1"))
	bus.Publish(progressEvent("task-a", models.EventPlanning, "a2"))
	bus.Publish(progressEvent("task-b", models.EventStarted, "b1"))

	gotA := drain(a)
	gotB := drain(b)
	require.Len(t, gotA, 2)
	require.Len(t, gotB, 1)
	assert.Equal(t, uint64(2), gotA[1].Seq)
	assert.Equal(t, uint64(1), gotB[0].Seq)
}

func TestBus_FanOutToAllObservers(t *testing.T) {
	bus := NewBus(0)
	first, err := bus.Subscribe("task-1")
	require.NoError(t, err)
	second, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	bus.Publish(progressEvent("task-1", models.EventStarted, "go"))

	require.Len(t, drain(first), 1)
	require.Len(t, drain(second), 1)
}

func TestBus_LateJoinerSeesOnlyLaterEvents(t *testing.T) {
	bus := NewBus(0)
	bus.Publish(progressEvent("task-1", models.EventStarted, "before"))

	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)
	bus.Publish(progressEvent("task-1", models.EventPlanning, "after"))

	got := drain(obs)
	require.Len(t, got, 1)
	assert.Equal(t, "after", got[0].Message)
	assert.Equal(t, uint64(2), got[0].Seq, "sequence keeps counting from the stream start")
}

func TestBus_ReplayWindow(t *testing.T) {
	bus := NewBus(2)
	for i := 1; i <= 4; i++ {
		bus.Publish(progressEvent("task-1", models.EventIteration, fmt.Sprintf("e%d", i)))
	}

	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)
	bus.Publish(progressEvent("task-1", models.EventEvidence, "live"))

	got := drain(obs)
	require.Len(t, got, 3)

	assert.Equal(t, "e3", got[0].Message)
	assert.True(t, got[0].Historical)
	assert.Equal(t, uint64(3), got[0].Seq)

	assert.Equal(t, "e4", got[1].Message)
	assert.True(t, got[1].Historical)

	assert.Equal(t, "live", got[2].Message)
	assert.False(t, got[2].Historical)
	assert.Equal(t, uint64(5), got[2].Seq)
}

func TestBus_TerminalEventClosesStream(t *testing.T) {
	bus := NewBus(0)
	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	bus.Publish(progressEvent("task-1", models.EventStarted, "start"))
	bus.Publish(progressEvent("task-1", models.EventCompleted, "done"))

	var got []models.ProgressEvent
	for ev := range obs.Events() {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, models.EventCompleted, got[1].Kind)

	_, err = bus.Subscribe("task-1")
	assert.ErrorIs(t, err, ErrTaskFinished)
}

func TestBus_PublishAfterTerminalIsDropped(t *testing.T) {
	bus := NewBus(0)
	bus.Publish(progressEvent("task-1", models.EventFailed, "boom"))

	// Must not panic or resurrect the stream.
	bus.Publish(progressEvent("task-1", models.EventEvidence, "late"))

	_, err := bus.Subscribe("task-1")
	assert.ErrorIs(t, err, ErrTaskFinished)
}

func TestBus_SlowObserverIsDropped(t *testing.T) {
	bus := NewBus(0)

	slow, err := bus.Subscribe("task-1")
	require.NoError(t, err)
	healthy, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	received := make(chan models.ProgressEvent, 1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range healthy.Events() {
			received <- ev
		}
	}()

	// The slow observer never reads; it overflows after observerBuffer
	// events and gets dropped without stalling the publisher.
	total := observerBuffer + 10
	for i := 0; i < total; i++ {
		bus.Publish(progressEvent("task-1", models.EventEvidence, fmt.Sprintf("e%d", i)))
	}
	bus.Publish(progressEvent("task-1", models.EventCompleted, "done"))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("healthy observer did not see stream end")
	}
	assert.Len(t, received, total+1, "healthy observer sees every event")

	got := drain(slow)
	assert.Len(t, got, observerBuffer, "slow observer keeps only its buffer")
	_, open := <-slow.Events()
	assert.False(t, open, "slow observer channel is closed after drop")
}

func TestBus_ObserverClose(t *testing.T) {
	bus := NewBus(0)
	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)
	require.Equal(t, 1, bus.ObserverCount("task-1"))

	obs.Close()
	assert.Equal(t, 0, bus.ObserverCount("task-1"))

	// Publishing afterwards must not panic; the channel is already closed.
	bus.Publish(progressEvent("task-1", models.EventStarted, "x"))
	obs.Close() // second close is a no-op
}

func TestBus_ObserverOrderIsPublicationOrder(t *testing.T) {
	bus := NewBus(0)
	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	kinds := []models.EventKind{
		models.EventStarted,
		models.EventPlanning,
		models.EventIteration,
		models.EventEvidence,
		models.EventEvaluation,
		models.EventReportGeneration,
		models.EventCompleted,
	}
	for _, k := range kinds {
		bus.Publish(progressEvent("task-1", k, string(k)))
	}

	var got []models.EventKind
	for ev := range obs.Events() {
		got = append(got, ev.Kind)
	}
	assert.Equal(t, kinds, got)
}

func TestBus_TapSeesSequencedEvents(t *testing.T) {
	bus := NewBus(0)

	var tapped []models.ProgressEvent
	bus.Tap(func(ev models.ProgressEvent) { tapped = append(tapped, ev) })

	obs, err := bus.Subscribe("task-1")
	require.NoError(t, err)

	bus.Publish(progressEvent("task-1", models.EventStarted, "a"))
	bus.Publish(progressEvent("task-1", models.EventCompleted, "b"))

	require.Len(t, tapped, 2)
	assert.Equal(t, uint64(1), tapped[0].Seq)
	assert.Equal(t, uint64(2), tapped[1].Seq)
	assert.False(t, tapped[0].Timestamp.IsZero())

	// Events dropped for arriving after the terminal never reach the tap.
	bus.Publish(progressEvent("task-1", models.EventEvidence, "late"))
	assert.Len(t, tapped, 2)

	got := drain(obs)
	require.Len(t, got, 2)
}
