package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/delver-project/delver/pkg/models"
)

// Summary holds the terminal state fields reconstructed from a trace.
type Summary struct {
	TaskID        string
	Status        models.TaskStatus
	Iterations    int
	EvidenceCount int
	Score         float64
	FailureReason string
	Events        int
}

type traceLine struct {
	TaskID string           `json:"task_id"`
	Seq    uint64           `json:"seq"`
	Kind   models.EventKind `json:"event_type"`
	Data   json.RawMessage  `json:"data"`
}

// Replay reads an NDJSON event log and reconstructs the task's terminal
// state. It fails on out-of-order sequences, mixed task IDs, or a stream
// without a terminal event.
func Replay(r io.Reader) (*Summary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	sum := &Summary{}
	var lastSeq uint64
	terminal := false

	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var line traceLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, fmt.Errorf("parse trace line %d: %w", sum.Events+1, err)
		}

		if sum.TaskID == "" {
			sum.TaskID = line.TaskID
		} else if line.TaskID != sum.TaskID {
			return nil, fmt.Errorf("trace mixes tasks %s and %s", sum.TaskID, line.TaskID)
		}
		if line.Seq <= lastSeq {
			return nil, fmt.Errorf("trace out of order at seq %d after %d", line.Seq, lastSeq)
		}
		lastSeq = line.Seq
		sum.Events++

		if terminal {
			return nil, fmt.Errorf("event after terminal at seq %d", line.Seq)
		}

		switch line.Kind {
		case models.EventIteration:
			sum.Iterations++

		case models.EventEvidence:
			var p models.EvidencePayload
			if err := json.Unmarshal(line.Data, &p); err == nil {
				sum.EvidenceCount = p.Total
			}

		case models.EventEvaluation:
			var p models.EvaluationPayload
			if err := json.Unmarshal(line.Data, &p); err == nil {
				sum.Score = p.Score
			}

		case models.EventCompleted:
			terminal = true
			sum.Status = models.TaskStatusCompleted
			var p models.CompletedPayload
			if err := json.Unmarshal(line.Data, &p); err == nil {
				sum.Score = p.Score
				sum.EvidenceCount = p.EvidenceCount
			}

		case models.EventFailed:
			terminal = true
			sum.Status = models.TaskStatusFailed
			var p models.FailedPayload
			if err := json.Unmarshal(line.Data, &p); err == nil {
				sum.FailureReason = p.Reason
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	if sum.Events == 0 {
		return nil, fmt.Errorf("empty trace")
	}
	if !terminal {
		return nil, fmt.Errorf("trace has no terminal event")
	}
	return sum, nil
}
