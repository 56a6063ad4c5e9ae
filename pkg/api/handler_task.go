package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/models"
)

// taskStatusHandler handles GET /tasks/:id/status.
func (s *Server) taskStatusHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := s.taskService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// listTasksHandler handles GET /tasks.
// Supports page, page_size, and status query parameters. Tasks are
// returned newest first.
func (s *Server) listTasksHandler(c *echo.Context) error {
	filters := models.TaskFilters{
		Page:     1,
		PageSize: 20,
	}

	// Parse pagination.
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			filters.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			filters.PageSize = ps
		}
	}

	// Parse status filter.
	if v := c.QueryParam("status"); v != "" {
		if !models.ValidTaskStatus(v) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = models.TaskStatus(v)
	}

	tasks, total, err := s.taskService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TaskListResponse{
		Tasks:    tasks,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	})
}

// taskLogsHandler handles GET /tasks/:id/logs.
// The optional since parameter (RFC3339) returns only records strictly
// after that instant.
func (s *Server) taskLogsHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var since *time.Time
	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since: must be RFC3339")
		}
		since = &t
	}

	logs, err := s.taskService.GetLogs(c.Request().Context(), taskID, since)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TaskLogsResponse{
		TaskID: taskID,
		Logs:   logs,
	})
}

// cancelTaskHandler handles POST /tasks/:id/cancel.
// Cancellation is asynchronous: 202 means the request was accepted, the
// task still finishes through its own terminal transition.
func (s *Server) cancelTaskHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := s.taskService.CancelTask(c.Request().Context(), taskID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &CancelResponse{
		TaskID:  taskID,
		Message: "Cancellation requested",
	})
}
