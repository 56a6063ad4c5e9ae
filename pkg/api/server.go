// Package api exposes the HTTP surface of the research service: intake
// endpoints that accept research queries, read endpoints for task status,
// logs, reports, and traces, a cached health endpoint, and the WebSocket
// progress stream.
package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/events"
	"github.com/delver-project/delver/pkg/persistence"
	"github.com/delver-project/delver/pkg/queue"
	"github.com/delver-project/delver/pkg/services"
	"github.com/delver-project/delver/pkg/trace"
)

// ProviderStatus is the slice of the provider gateway the health endpoint
// reads. Satisfied by *provider.Gateway.
type ProviderStatus interface {
	// Modes reports the active text and search modes, "http" or "mock".
	Modes() (text, search string)
}

// Server hosts the HTTP API. All handlers are methods on it.
type Server struct {
	echo        *echo.Echo
	httpServer  *http.Server
	store       persistence.Store
	providers   ProviderStatus
	taskService *services.TaskService
	pool        *queue.TaskPool
	connManager *events.ConnectionManager
	recorder    *trace.Recorder

	healthMu      sync.Mutex
	healthCached  *HealthResponse
	healthExpires time.Time
}

// NewServer wires the HTTP server and registers all routes.
func NewServer(
	store persistence.Store,
	providers ProviderStatus,
	taskService *services.TaskService,
	pool *queue.TaskPool,
	connManager *events.ConnectionManager,
	recorder *trace.Recorder,
) *Server {
	s := &Server{
		echo:        echo.New(),
		store:       store,
		providers:   providers,
		taskService: taskService,
		pool:        pool,
		connManager: connManager,
		recorder:    recorder,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.Use(requestLogger())
	e.Use(securityHeaders())
	e.Use(bodyLimit())

	e.GET("/health", s.healthHandler)

	e.POST("/research", s.submitResearchHandler)
	e.POST("/deep-research", s.submitDeepResearchHandler)

	e.GET("/tasks", s.listTasksHandler)
	e.GET("/tasks/:id/status", s.taskStatusHandler)
	e.GET("/tasks/:id/logs", s.taskLogsHandler)
	e.POST("/tasks/:id/cancel", s.cancelTaskHandler)

	e.GET("/reports/:id", s.getReportHandler)
	e.GET("/deep-research/:id", s.getDeepReportHandler)

	e.GET("/traces/:id", s.getTraceHandler)

	e.GET("/ws/progress/:id", s.wsProgressHandler)
}

// Start runs the HTTP server on addr. Blocks until the server stops;
// returns http.ErrServerClosed after a graceful Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = s.newHTTPServer()
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an existing listener. Used by tests that bind
// to a random port before starting the server.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = s.newHTTPServer()
	return s.httpServer.Serve(ln)
}

func (s *Server) newHTTPServer() *http.Server {
	return &http.Server{
		Handler: s.echo,
		// No write timeout: WebSocket progress streams stay open for the
		// lifetime of a task.
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
