package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/queue"
)

func TestSubmitDeepResearchHandler_Validation(t *testing.T) {
	// Validation failures return before the service is touched, so a bare
	// Server is enough.
	s := &Server{}

	tests := []struct {
		name    string
		body    string
		wantErr int
		errMsg  string
	}{
		{
			name:    "missing query",
			body:    `{}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "query is required",
		},
		{
			name:    "max_iterations below range",
			body:    `{"query":"q","max_iterations":0}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "max_iterations must be at least 1",
		},
		{
			name:    "max_iterations above range",
			body:    `{"query":"q","max_iterations":6}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "max_iterations must be at most 5",
		},
		{
			name:    "min_completion_score below range",
			body:    `{"query":"q","min_completion_score":0.3}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "min_completion_score must be at least 0.5",
		},
		{
			name:    "min_completion_score above range",
			body:    `{"query":"q","min_completion_score":1.5}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "min_completion_score must be at most 1",
		},
		{
			name:    "budget below range",
			body:    `{"query":"q","budget":10}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "budget must be at least 50",
		},
		{
			name:    "budget above range",
			body:    `{"query":"q","budget":999}`,
			wantErr: http.StatusBadRequest,
			errMsg:  "budget must be at most 300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/deep-research", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.submitDeepResearchHandler(c)
			if assert.Error(t, err) {
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, tt.wantErr, he.Code)
					assert.Contains(t, he.Message, tt.errMsg)
				}
			}
		})
	}
}

func TestSubmitResearchHandler(t *testing.T) {
	t.Run("accepts simple task", func(t *testing.T) {
		s, store, pool := newTestServer(t)

		rec := doJSON(s, http.MethodPost, "/research", `{"query":"history of the transistor"}`)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp TaskAcceptedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.TaskID)
		assert.Equal(t, "accepted", resp.Status)

		task, err := store.GetTask(context.Background(), resp.TaskID)
		require.NoError(t, err)
		assert.Equal(t, models.TaskKindSimple, task.Kind)
		assert.Equal(t, 1, task.Config.MaxIterations)
		assert.Equal(t, 50, task.Config.Budget)

		pool.mu.Lock()
		defer pool.mu.Unlock()
		assert.Equal(t, []string{resp.TaskID}, pool.submitted)
	})

	t.Run("missing query is 400", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodPost, "/research", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "query is required")
	})

	t.Run("full queue is 503", func(t *testing.T) {
		s, store, pool := newTestServer(t)
		pool.submitErr = queue.ErrQueueFull

		rec := doJSON(s, http.MethodPost, "/research", `{"query":"anything"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		// The intake row is settled as failed so no task is left dangling.
		tasks, _, err := store.ListTasks(context.Background(), models.TaskFilters{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, models.TaskStatusFailed, tasks[0].Status)
	})
}

func TestSubmitDeepResearchHandler(t *testing.T) {
	t.Run("defaults applied when tuning omitted", func(t *testing.T) {
		s, store, _ := newTestServer(t)

		rec := doJSON(s, http.MethodPost, "/deep-research", `{"query":"grid scale battery storage"}`)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp TaskAcceptedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		task, err := store.GetTask(context.Background(), resp.TaskID)
		require.NoError(t, err)
		assert.Equal(t, models.TaskKindDeep, task.Kind)
		assert.Equal(t, 3, task.Config.MaxIterations)
		assert.InDelta(t, 0.75, task.Config.MinCompletionScore, 1e-9)
		assert.Equal(t, 150, task.Config.Budget)
	})

	t.Run("explicit tuning respected", func(t *testing.T) {
		s, store, _ := newTestServer(t)

		body := `{"query":"grid scale battery storage","max_iterations":5,"min_completion_score":0.9,"budget":200}`
		rec := doJSON(s, http.MethodPost, "/deep-research", body)
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp TaskAcceptedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		task, err := store.GetTask(context.Background(), resp.TaskID)
		require.NoError(t, err)
		assert.Equal(t, 5, task.Config.MaxIterations)
		assert.InDelta(t, 0.9, task.Config.MinCompletionScore, 1e-9)
		assert.Equal(t, 200, task.Config.Budget)
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		s, _, _ := newTestServer(t)

		rec := doJSON(s, http.MethodPost, "/deep-research", `{"query":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
