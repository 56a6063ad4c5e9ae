// Package e2e provides in-process end-to-end test infrastructure for the
// research service: a full server wired the way main is, against the
// in-memory store and mock or scripted providers.
package e2e

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/api"
	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/events"
	"github.com/delver-project/delver/pkg/evidence"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/provider"
	"github.com/delver-project/delver/pkg/queue"
	"github.com/delver-project/delver/pkg/research"
	"github.com/delver-project/delver/pkg/services"
	"github.com/delver-project/delver/pkg/trace"
)

// TestApp boots a complete service instance for e2e testing.
type TestApp struct {
	// Core
	Config config.ResearchConfig
	Store  *persistence.MemoryStore

	// Real infrastructure
	Bus         *events.Bus
	Recorder    *trace.Recorder
	ConnManager *events.ConnectionManager
	Pool        *queue.TaskPool
	TaskService *services.TaskService
	Server      *api.Server

	// Runtime
	BaseURL string // e.g. "http://127.0.0.1:54321"
	WSBase  string // e.g. "ws://127.0.0.1:54321"

	t *testing.T
}

// testAppConfig holds options accumulated before creating the TestApp.
type testAppConfig struct {
	cfg          *config.ResearchConfig
	client       research.ProviderClient
	replayEvents int
	artifactsDir string
}

// TestAppOption configures the test app.
type TestAppOption func(*testAppConfig)

// WithProviderClient replaces the mock-mode gateway with a scripted provider.
func WithProviderClient(client research.ProviderClient) TestAppOption {
	return func(c *testAppConfig) { c.client = client }
}

// WithResearchConfig sets a custom research configuration.
func WithResearchConfig(cfg config.ResearchConfig) TestAppOption {
	return func(c *testAppConfig) { c.cfg = &cfg }
}

// WithReplayEvents sets how many recent events the bus replays to late
// subscribers. The default is zero: late joiners see live events only.
func WithReplayEvents(n int) TestAppOption {
	return func(c *testAppConfig) { c.replayEvents = n }
}

// WithArtifactsDir mirrors task traces to NDJSON files under dir.
func WithArtifactsDir(dir string) TestAppOption {
	return func(c *testAppConfig) { c.artifactsDir = dir }
}

// scriptedStatus reports mock mode for both capabilities when a scripted
// provider replaces the real gateway.
type scriptedStatus struct{}

func (scriptedStatus) Modes() (text, search string) { return "mock", "mock" }

// NewTestApp creates and starts a full service instance on a random port.
// Shutdown is registered via t.Cleanup automatically.
func NewTestApp(t *testing.T, opts ...TestAppOption) *TestApp {
	t.Helper()

	tc := &testAppConfig{}
	for _, opt := range opts {
		opt(tc)
	}
	if tc.cfg == nil {
		cfg := defaultTestConfig()
		tc.cfg = &cfg
	}

	// 1. Store: always in-memory for e2e.
	store := persistence.NewMemoryStore()

	// 2. Provider: credential-less gateway (mock mode) unless a scripted
	// client was injected.
	var client research.ProviderClient
	var status api.ProviderStatus
	if tc.client != nil {
		client = tc.client
		status = scriptedStatus{}
	} else {
		gateway := provider.NewGateway(config.ProviderConfig{}, config.RateLimitConfig{})
		client = gateway
		status = gateway
	}

	// 3. Evidence scoring from the embedded authority table.
	table, err := config.LoadAuthorityTable("")
	require.NoError(t, err)
	scorer := evidence.NewScorer(table)

	// 4. Progress streaming: bus, trace recorder tap, connection manager.
	bus := events.NewBus(tc.replayEvents)
	recorder := trace.NewRecorder(tc.artifactsDir)
	bus.Tap(recorder.Record)
	connManager := events.NewConnectionManager(bus, 2*time.Second)

	// 5. Orchestrator and task pool.
	appCtx, appCancel := context.WithCancel(context.Background())
	orch := research.NewOrchestrator(store, bus, client, scorer, *tc.cfg)
	pool := queue.NewTaskPool(*tc.cfg, orch)
	require.NoError(t, pool.Start(appCtx))

	// 6. Intake service and HTTP server.
	taskService := services.NewTaskService(store, pool, *tc.cfg)
	server := api.NewServer(store, status, taskService, pool, connManager, recorder)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = server.StartWithListener(ln)
	}()

	addr := ln.Addr().String()
	app := &TestApp{
		Config:      *tc.cfg,
		Store:       store,
		Bus:         bus,
		Recorder:    recorder,
		ConnManager: connManager,
		Pool:        pool,
		TaskService: taskService,
		Server:      server,
		BaseURL:     fmt.Sprintf("http://%s", addr),
		WSBase:      fmt.Sprintf("ws://%s", addr),
		t:           t,
	}

	// Register cleanup in reverse-creation order. Cancelling the app context
	// first aborts any run a test left in flight, so Stop cannot hang on it.
	t.Cleanup(func() {
		appCancel()
		pool.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		recorder.Close()
	})

	return app
}

// defaultTestConfig sizes the pipeline for fast deterministic runs.
func defaultTestConfig() config.ResearchConfig {
	return config.ResearchConfig{
		MaxConcurrentTasks:  2,
		DefaultTimeout:      30 * time.Second,
		QualityThreshold:    0.75,
		MaxEvidencePerQuery: 3,
		SubQueryConcurrency: 4,
		DefaultDeepBudget:   150,
		SimpleBudget:        50,
	}
}
