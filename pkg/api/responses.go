package api

import (
	"encoding/json"
	"time"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/queue"
)

// TaskAcceptedResponse is returned by POST /research and POST /deep-research.
type TaskAcceptedResponse struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// CancelResponse is returned by POST /tasks/:id/cancel.
type CancelResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// TaskListResponse is the paginated result of GET /tasks.
type TaskListResponse struct {
	Tasks    []*models.ResearchTask `json:"tasks"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// TaskLogsResponse is returned by GET /tasks/:id/logs.
type TaskLogsResponse struct {
	TaskID string             `json:"task_id"`
	Logs   []models.LogRecord `json:"logs"`
}

// ReportResponse is returned by GET /reports/:id. For tasks that have not
// finished only Status is set; for failed tasks ErrorReason carries the
// failure reason recorded on the task.
type ReportResponse struct {
	TaskID      string          `json:"task_id"`
	Status      string          `json:"status"`
	ReportMD    string          `json:"report_md,omitempty"`
	SourcesBib  string          `json:"sources_bib,omitempty"`
	MetricsJSON json.RawMessage `json:"metrics_json,omitempty"`
	ErrorReason string          `json:"error_reason,omitempty"`
}

// DeepReportResponse is returned by GET /deep-research/:id. It extends the
// plain report with the research summary and quality metrics.
type DeepReportResponse struct {
	TaskID          string                  `json:"task_id"`
	Status          string                  `json:"status"`
	ReportMD        string                  `json:"report_md,omitempty"`
	SourcesBib      string                  `json:"sources_bib,omitempty"`
	ResearchSummary *models.ResearchSummary `json:"research_summary,omitempty"`
	QualityMetrics  *models.QualityMetrics  `json:"quality_metrics,omitempty"`
	ErrorReason     string                  `json:"error_reason,omitempty"`
}

// ProvidersHealth reports the active provider backends, "configured" when a
// real backend is wired and "mock" for the built-in deterministic providers.
type ProvidersHealth struct {
	Text   string `json:"text"`
	Search string `json:"search"`
}

// HealthResponse is returned by GET /health. Responses are cached; Cached
// marks a response served from the cache, Timestamp is when the snapshot
// was taken.
type HealthResponse struct {
	Status      string            `json:"status"`
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Providers   ProvidersHealth   `json:"providers"`
	Persistence string            `json:"persistence"`
	WorkerPool  *queue.PoolHealth `json:"worker_pool,omitempty"`
	Cached      bool              `json:"cached"`
	Timestamp   time.Time         `json:"timestamp"`
}
