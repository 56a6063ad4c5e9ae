package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/delver-project/delver/pkg/queue"
	"github.com/delver-project/delver/pkg/version"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"

	// healthCacheTTL bounds how often a health probe recomputes the
	// snapshot; load balancers poll this endpoint aggressively.
	healthCacheTTL = 30 * time.Second
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the service's own components (persistence, worker pool) influence
// the status; provider backends are reported but never fail the check, so
// an upstream outage cannot get the service restarted.
func (s *Server) healthHandler(c *echo.Context) error {
	s.healthMu.Lock()
	defer s.healthMu.Unlock()

	if s.healthCached != nil && time.Now().Before(s.healthExpires) {
		resp := *s.healthCached
		resp.Cached = true
		return c.JSON(http.StatusOK, &resp)
	}

	resp := s.buildHealthResponse()
	s.healthCached = resp
	s.healthExpires = time.Now().Add(healthCacheTTL)

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) buildHealthResponse() *HealthResponse {
	status := healthStatusHealthy
	if s.store.Degraded() {
		status = healthStatusDegraded
	}

	var poolHealth *queue.PoolHealth
	if s.pool != nil {
		poolHealth = s.pool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			status = healthStatusDegraded
		}
	}

	text, search := s.providers.Modes()

	return &HealthResponse{
		Status:  status,
		Service: version.AppName,
		Version: version.GitCommit,
		Providers: ProvidersHealth{
			Text:   providerLabel(text),
			Search: providerLabel(search),
		},
		Persistence: s.store.Mode(),
		WorkerPool:  poolHealth,
		Timestamp:   time.Now().UTC(),
	}
}

// providerLabel collapses provider modes into the two states health
// reporting distinguishes.
func providerLabel(mode string) string {
	if mode == "mock" {
		return "mock"
	}
	return "configured"
}
