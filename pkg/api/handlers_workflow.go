package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// handleCreateSession handles POST /sessions: starts a new build
// session at phase 1.
func (s *Server) handleCreateSession(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := requireField("workspace_id", req.WorkspaceID); err != nil {
		return writeError(c, err)
	}
	if err := requireField("initial_prompt", req.InitialPrompt); err != nil {
		return writeError(c, err)
	}

	sess, err := s.workflow.CreateSession(c.Request().Context(), req)
	if err != nil {
		return writeError(c, apierr.Wrap(apierr.KindInternal, "failed to create session", err))
	}
	return c.JSON(http.StatusCreated, sess)
}

// handleListSessions handles GET /sessions?workspace_id=...
func (s *Server) handleListSessions(c *echo.Context) error {
	workspaceID := c.QueryParam("workspace_id")
	if err := requireField("workspace_id", workspaceID); err != nil {
		return writeError(c, err)
	}

	filters := models.SessionFilters{
		WorkspaceID: workspaceID,
		Status:      c.QueryParam("status"),
	}
	resp, err := s.workflow.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return writeError(c, apierr.Wrap(apierr.KindInternal, "failed to list sessions", err))
	}
	return c.JSON(http.StatusOK, resp)
}

// handleGetSession handles GET /sessions/:sessionId?workspace_id=...
func (s *Server) handleGetSession(c *echo.Context) error {
	workspaceID := c.QueryParam("workspace_id")
	if err := requireField("workspace_id", workspaceID); err != nil {
		return writeError(c, err)
	}

	sess, err := s.workflow.GetSession(c.Request().Context(), workspaceID, c.Param("sessionId"))
	if err != nil {
		return writeError(c, apierr.Wrap(apierr.KindNotFound, "session not found", err))
	}
	return c.JSON(http.StatusOK, sess)
}

// handleCancelSession handles POST /sessions/:sessionId/cancel?workspace_id=...
func (s *Server) handleCancelSession(c *echo.Context) error {
	workspaceID := c.QueryParam("workspace_id")
	if err := requireField("workspace_id", workspaceID); err != nil {
		return writeError(c, err)
	}

	sessionID := c.Param("sessionId")
	if err := s.workflow.Cancel(c.Request().Context(), workspaceID, sessionID); err != nil {
		return writeError(c, mapWorkflowError(err))
	}

	// Stop the stream if this pod is holding it, and relay the
	// cancellation to every other pod in case it's holding it instead.
	// Both are best-effort: a missing local stream or a failed NOTIFY
	// never fails the cancel request itself, since the session's status
	// is already durably updated by workflow.Cancel above.
	s.streams.cancel(sessionID)
	if s.publisher != nil {
		_ = s.publisher.PublishSessionCancel(c.Request().Context(), sessionID)
	}
	return c.NoContent(http.StatusNoContent)
}

// handleWorkflowAdvance handles POST /workflow/advance: delivers one
// user turn and returns the subagent's response plus whatever phase
// transition it triggered.
func (s *Server) handleWorkflowAdvance(c *echo.Context) error {
	var req models.AdvanceWorkflowRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := requireField("session_id", req.SessionID); err != nil {
		return writeError(c, err)
	}
	if err := requireField("workspace_id", req.WorkspaceID); err != nil {
		return writeError(c, err)
	}

	resp, err := s.workflow.Advance(c.Request().Context(), req)
	if err != nil {
		return writeError(c, mapWorkflowError(err))
	}
	return c.JSON(http.StatusOK, resp)
}
