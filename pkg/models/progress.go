package models

import "time"

// EventKind is the closed set of progress event types a task may emit.
type EventKind string

const (
	EventStarted          EventKind = "started"
	EventPlanning         EventKind = "planning"
	EventIteration        EventKind = "iteration"
	EventEvidence         EventKind = "evidence"
	EventEvaluation       EventKind = "evaluation"
	EventGapAnalysis      EventKind = "gap_analysis"
	EventRefinement       EventKind = "refinement"
	EventReportGeneration EventKind = "report_generation"
	EventCompleted        EventKind = "completed"
	EventFailed           EventKind = "failed"
)

// IsTerminal reports whether the kind ends a task's event stream.
func (k EventKind) IsTerminal() bool {
	return k == EventCompleted || k == EventFailed
}

// ProgressEvent is one entry in a task's ordered progress stream. Seq is
// assigned by the progress bus and is strictly increasing per task. Payload
// holds the kind-specific struct below (may be nil); it is serialized to
// JSON only at the transport boundary.
type ProgressEvent struct {
	TaskID    string    `json:"task_id"`
	Seq       uint64    `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"event_type"`
	Message   string    `json:"message"`
	Payload   any       `json:"data,omitempty"`

	// Historical marks events replayed to a late subscriber rather than
	// delivered live.
	Historical bool `json:"historical,omitempty"`
}

// Payload schemas, one per event kind.

type StartedPayload struct {
	Query string   `json:"query"`
	Kind  TaskKind `json:"kind"`
}

type PlanningPayload struct {
	SubTasks int `json:"sub_tasks"`
}

type IterationPayload struct {
	Iteration     int `json:"iteration"`
	MaxIterations int `json:"max_iterations"`
}

type EvidencePayload struct {
	New   int `json:"new"`
	Total int `json:"total"`
}

type EvaluationPayload struct {
	Score float64         `json:"score"`
	Level CompletionLevel `json:"level"`
}

type GapAnalysisPayload struct {
	Gaps []string `json:"gaps"`
}

type RefinementPayload struct {
	Count int `json:"count"`
}

type ReportGenerationPayload struct {
	EvidenceTotal int `json:"evidence_total"`
}

type CompletedPayload struct {
	Score         float64 `json:"score"`
	EvidenceCount int     `json:"evidence_count"`
	DurationMS    int64   `json:"duration_ms"`
}

type FailedPayload struct {
	Reason string `json:"reason"`
}
