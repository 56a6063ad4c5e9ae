// Delver research server: provides the HTTP API, runs the task pool, and
// drives research tasks from intake to report.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

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
	"github.com/delver-project/delver/pkg/version"
)

func main() {
	// Load .env from the working directory
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	} else {
		slog.Info("Loaded environment from .env")
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting delver",
		"version", version.Full(),
		"http_addr", cfg.HTTPAddr,
		"max_concurrent_tasks", cfg.Research.MaxConcurrentTasks)

	// 2. Open persistence (durable with in-memory fallback, or memory only)
	store := persistence.Open(ctx, cfg.Persistence)
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()

	// 3. Provider gateway (real backends when keys are set, mocks otherwise)
	gateway := provider.NewGateway(cfg.Provider, cfg.RateLimit)
	text, search := gateway.Modes()
	slog.Info("Provider gateway initialized", "text", text, "search", search)

	// 4. Evidence scoring
	table, err := config.LoadAuthorityTable(cfg.AuthorityTablePath)
	if err != nil {
		slog.Error("Failed to load authority table", "error", err)
		os.Exit(1)
	}
	scorer := evidence.NewScorer(table)

	// 5. Progress streaming: bus, trace recorder tap, WebSocket manager
	bus := events.NewBus(cfg.ProgressReplayEvents)
	recorder := trace.NewRecorder(cfg.ArtifactsDir)
	defer recorder.Close()
	bus.Tap(recorder.Record)
	connManager := events.NewConnectionManager(bus, 10*time.Second)

	// 6. Start task pool (before the HTTP server)
	orchestrator := research.NewOrchestrator(store, bus, gateway, scorer, cfg.Research)
	pool := queue.NewTaskPool(cfg.Research, orchestrator)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start task pool", "error", err)
		os.Exit(1)
	}

	// 7. Create HTTP server
	taskService := services.NewTaskService(store, pool, cfg.Research)
	httpServer := api.NewServer(store, gateway, taskService, pool, connManager, recorder)

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Delver started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain the pool first so running tasks can
	// finish and publish their terminal events while the API still serves
	// status reads, then stop the HTTP server.
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Task pool stopped gracefully")
	case <-time.After(cfg.Research.DefaultTimeout):
		slog.Warn("Shutdown timeout exceeded, abandoning running tasks")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
