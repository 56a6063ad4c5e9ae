package models

import "time"

// IterationDetail summarizes one completed research iteration for the
// deep-research summary.
type IterationDetail struct {
	Iteration     int     `json:"iteration"`
	QueriesRun    int     `json:"queries_run"`
	EvidenceAdded int     `json:"evidence_added"`
	Score         float64 `json:"score"`
	GapsFound     int     `json:"gaps_found"`
}

// ResearchSummary describes how a deep task arrived at its report.
type ResearchSummary struct {
	Query            string            `json:"query"`
	Iterations       int               `json:"iterations"`
	TotalEvidence    int               `json:"total_evidence"`
	QualityScore     float64           `json:"quality_score"`
	CompletionLevel  CompletionLevel   `json:"completion_level"`
	ExecutionTime    float64           `json:"execution_time_sec"`
	KeyFindings      []string          `json:"key_findings,omitempty"`
	IterationDetails []IterationDetail `json:"iteration_details,omitempty"`
}

// QualityMetrics aggregates the terminal quality figures of a task.
type QualityMetrics struct {
	CompletionScore     float64 `json:"completion_score"`
	CompletionLevel     string  `json:"completion_level"`
	EvidenceCount       int     `json:"evidence_count"`
	ExecutionSeconds    float64 `json:"execution_seconds"`
	EvidenceQualityMean float64 `json:"evidence_quality_mean"`
	EvidenceQualityMin  float64 `json:"evidence_quality_min"`
	EvidenceQualityMax  float64 `json:"evidence_quality_max"`
}

// Report is the final synthesized output of a completed task. Exactly one
// report exists per completed task; failed tasks have none.
type Report struct {
	TaskID       string           `json:"task_id"`
	Markdown     string           `json:"report_md"`
	Bibliography string           `json:"sources_bib"`
	Summary      *ResearchSummary `json:"research_summary,omitempty"`
	Metrics      *QualityMetrics  `json:"quality_metrics,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
