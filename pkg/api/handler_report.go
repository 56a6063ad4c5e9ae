package api

import (
	"encoding/json"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/models"
)

// getReportHandler handles GET /reports/:id.
// Always 200 for a known task: finished tasks carry the report or the
// failure reason, unfinished tasks carry only the current status.
func (s *Server) getReportHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, report, err := s.taskService.GetReport(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &ReportResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	}
	if task.Status == models.TaskStatusFailed {
		resp.ErrorReason = task.Details
	}
	if report != nil {
		resp.ReportMD = report.Markdown
		resp.SourcesBib = report.Bibliography
		if report.Metrics != nil {
			if b, err := json.Marshal(report.Metrics); err == nil {
				resp.MetricsJSON = b
			}
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// getDeepReportHandler handles GET /deep-research/:id.
// Same contract as GET /reports/:id plus the research summary and quality
// metrics recorded with the report.
func (s *Server) getDeepReportHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, report, err := s.taskService.GetReport(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &DeepReportResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	}
	if task.Status == models.TaskStatusFailed {
		resp.ErrorReason = task.Details
	}
	if report != nil {
		resp.ReportMD = report.Markdown
		resp.SourcesBib = report.Bibliography
		resp.ResearchSummary = report.Summary
		resp.QualityMetrics = report.Metrics
	}

	return c.JSON(http.StatusOK, resp)
}
