package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/queue"
	"github.com/delver-project/delver/pkg/services"
)

type degradedStore struct {
	persistence.Store
}

func (degradedStore) Degraded() bool { return true }

type noopExecutor struct{}

func (noopExecutor) Run(context.Context, *models.ResearchTask) {}

func newHealthServer(store persistence.Store, providers ProviderStatus, pool *queue.TaskPool) *Server {
	svc := services.NewTaskService(store, &stubPool{}, testResearchConfig())
	return NewServer(store, providers, svc, pool, nil, nil)
}

func getHealth(t *testing.T, s *Server) HealthResponse {
	t.Helper()
	rec := doJSON(s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy with mock providers and memory store", func(t *testing.T) {
		s := newHealthServer(persistence.NewMemoryStore(), stubProviders{}, nil)

		resp := getHealth(t, s)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "delver", resp.Service)
		assert.NotEmpty(t, resp.Version)
		assert.Equal(t, "mock", resp.Providers.Text)
		assert.Equal(t, "mock", resp.Providers.Search)
		assert.Equal(t, persistence.ModeMemory, resp.Persistence)
		assert.False(t, resp.Cached)
		assert.Nil(t, resp.WorkerPool)
	})

	t.Run("real backends reported as configured", func(t *testing.T) {
		s := newHealthServer(persistence.NewMemoryStore(), stubProviders{text: "http", search: "http"}, nil)

		resp := getHealth(t, s)
		assert.Equal(t, "configured", resp.Providers.Text)
		assert.Equal(t, "configured", resp.Providers.Search)
	})

	t.Run("degraded store degrades status", func(t *testing.T) {
		s := newHealthServer(degradedStore{persistence.NewMemoryStore()}, stubProviders{}, nil)

		resp := getHealth(t, s)
		assert.Equal(t, "degraded", resp.Status)
	})

	t.Run("stopped worker pool degrades status", func(t *testing.T) {
		pool := queue.NewTaskPool(config.ResearchConfig{
			MaxConcurrentTasks: 2,
			DefaultTimeout:     time.Second,
		}, noopExecutor{})
		s := newHealthServer(persistence.NewMemoryStore(), stubProviders{}, pool)

		resp := getHealth(t, s)
		assert.Equal(t, "degraded", resp.Status)
		require.NotNil(t, resp.WorkerPool)
		assert.False(t, resp.WorkerPool.IsHealthy)
	})

	t.Run("second probe served from cache", func(t *testing.T) {
		s := newHealthServer(persistence.NewMemoryStore(), stubProviders{}, nil)

		first := getHealth(t, s)
		second := getHealth(t, s)

		assert.False(t, first.Cached)
		assert.True(t, second.Cached)
		assert.True(t, first.Timestamp.Equal(second.Timestamp))
	})
}
