package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
)

// handleDependencies handles GET /dependencies/{sessionId}?action=analysis|critical_path&batchId=...
// Both actions run the same dependency-graph
// analysis; critical_path just trims the response to that one field,
// since recomputing waves is what produces the critical path too.
func (s *Server) handleDependencies(c *echo.Context) error {
	batchID := c.QueryParam("batchId")
	if err := requireField("batchId", batchID); err != nil {
		return writeError(c, err)
	}
	action := c.QueryParam("action")
	if action == "" {
		action = "analysis"
	}

	analysis, err := s.parallel.Analyze(c.Request().Context(), batchID)
	if err != nil {
		return writeError(c, mapParallelError(err))
	}

	switch action {
	case "analysis":
		return c.JSON(http.StatusOK, analysis)
	case "critical_path":
		return c.JSON(http.StatusOK, map[string]any{
			"critical_path":    analysis.CriticalPath,
			"critical_path_ms": analysis.CriticalPathMs,
		})
	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown dependencies action: "+action))
	}
}
