package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/queue"
	"github.com/delver-project/delver/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrTaskTerminal) {
		return echo.NewHTTPError(http.StatusConflict, "task is already in a terminal state")
	}
	if errors.Is(err, queue.ErrQueueFull) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "task queue is full, retry later")
	}
	if errors.Is(err, queue.ErrPoolStopped) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service is shutting down")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
