package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getTraceHandler handles GET /traces/:id.
// Streams the task's full progress history as newline-delimited JSON, one
// event per line in emission order.
func (s *Server) getTraceHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}
	if s.recorder == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "trace recording not available")
	}

	data, ok := s.recorder.Export(taskID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no trace recorded for task")
	}

	return c.Blob(http.StatusOK, "application/x-ndjson", data)
}
