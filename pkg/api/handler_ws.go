package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsProgressHandler handles GET /ws/progress/:id.
// Upgrades to WebSocket and delegates to the ConnectionManager, which
// replays recent history and streams live events until the task finishes.
func (s *Server) wsProgressHandler(c *echo.Context) error {
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	// Reject unknown tasks before the upgrade so clients get a clean 404
	// instead of a stream that never produces events.
	if _, err := s.taskService.GetTask(c.Request().Context(), taskID); err != nil {
		return mapServiceError(err)
	}

	// Upgrade HTTP to WebSocket
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Accept all origins: the progress stream is read-only.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, taskID)
	return nil
}
