package api

import (
	"net/http"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/health"
)

// HealthResponse is the GET /health payload: overall status plus each
// sandbox's latest poll result. Cached for 30s.
type HealthResponse struct {
	Status    string                    `json:"status"`
	Sandboxes map[string]*health.Status `json:"sandboxes,omitempty"`
	Checked   time.Time                 `json:"checked_at"`
}

// healthCache memoizes the last GET /health response for ttl, avoiding
// hammering the health monitor's in-memory map on tight client polling
// loops (load balancers routinely poll /health every few seconds).
type healthCache struct {
	ttl time.Duration

	mu        sync.Mutex
	cached    *HealthResponse
	cachedAt  time.Time
}

func newHealthCache(ttl time.Duration) healthCache {
	return healthCache{ttl: ttl}
}

func (s *Server) handleHealth(c *echo.Context) error {
	s.health.mu.Lock()
	defer s.health.mu.Unlock()

	if s.health.cached != nil && time.Since(s.health.cachedAt) < s.health.ttl {
		return c.JSON(http.StatusOK, s.health.cached)
	}

	resp := &HealthResponse{Status: "healthy", Checked: time.Now()}
	if s.monitor != nil {
		statuses := s.monitor.Statuses()
		resp.Sandboxes = statuses
		for _, st := range statuses {
			if !st.Healthy {
				resp.Status = "degraded"
				break
			}
		}
	}

	s.health.cached = resp
	s.health.cachedAt = time.Now()
	return c.JSON(http.StatusOK, resp)
}
