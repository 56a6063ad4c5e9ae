package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/services"
)

// submitResearchHandler handles POST /research.
// Accepts a single-pass research task and returns immediately with task_id.
func (s *Server) submitResearchHandler(c *echo.Context) error {
	// 1. Bind HTTP request
	var req SubmitResearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// 2. Validate
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	// 3. Call service
	task, err := s.taskService.SubmitTask(c.Request().Context(), services.SubmitTaskInput{
		Query: req.Query,
		Kind:  models.TaskKindSimple,
	})
	if err != nil {
		return mapServiceError(err)
	}

	// 4. Return response
	return c.JSON(http.StatusAccepted, &TaskAcceptedResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	})
}

// submitDeepResearchHandler handles POST /deep-research.
// Accepts an iterative deep-research task with optional tuning overrides.
func (s *Server) submitDeepResearchHandler(c *echo.Context) error {
	// 1. Bind HTTP request
	var req SubmitDeepResearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// 2. Validate, including tuning ranges
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}

	// 3. Transform to service input; omitted tuning fields stay zero and
	// the service substitutes its defaults
	input := services.SubmitTaskInput{
		Query: req.Query,
		Kind:  models.TaskKindDeep,
	}
	if req.MaxIterations != nil {
		input.MaxIterations = *req.MaxIterations
	}
	if req.MinCompletionScore != nil {
		input.MinCompletionScore = *req.MinCompletionScore
	}
	if req.Budget != nil {
		input.Budget = *req.Budget
	}

	// 4. Call service
	task, err := s.taskService.SubmitTask(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}

	// 5. Return response
	return c.JSON(http.StatusAccepted, &TaskAcceptedResponse{
		TaskID: task.ID,
		Status: string(task.Status),
	})
}
