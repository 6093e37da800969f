package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// parallelActionRequest is the single envelope POST /parallel accepts,
// shaped by its action field, mirroring the /sandbox handler's style.
type parallelActionRequest struct {
	Action      string                     `json:"action"`
	SessionID   string                     `json:"session_id"`
	WorkspaceID string                     `json:"workspace_id"`
	Phase       int                        `json:"phase"`
	Tasks       []models.CreateTaskRequest `json:"tasks"`
	BatchID     string                     `json:"batch_id"`
}

// handleParallelAction handles POST /parallel (action=create_and_execute|cancel).
func (s *Server) handleParallelAction(c *echo.Context) error {
	var req parallelActionRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}

	switch req.Action {
	case "create_and_execute":
		if err := requireField("session_id", req.SessionID); err != nil {
			return writeError(c, err)
		}
		if err := requireField("workspace_id", req.WorkspaceID); err != nil {
			return writeError(c, err)
		}
		batch, err := s.parallel.CreateAndExecute(c.Request().Context(), models.CreateBatchRequest{
			SessionID:   req.SessionID,
			WorkspaceID: req.WorkspaceID,
			Phase:       req.Phase,
			Tasks:       req.Tasks,
		})
		if err != nil {
			return writeError(c, mapParallelError(err))
		}
		return c.JSON(http.StatusCreated, batch)

	case "cancel":
		if err := requireField("session_id", req.SessionID); err != nil {
			return writeError(c, err)
		}
		if err := requireField("batch_id", req.BatchID); err != nil {
			return writeError(c, err)
		}
		s.parallel.Cancel(req.SessionID, req.BatchID)
		return c.NoContent(http.StatusAccepted)

	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown parallel action: "+req.Action))
	}
}

// handleParallelStatus handles GET /parallel?action=status&batchId=...
func (s *Server) handleParallelStatus(c *echo.Context) error {
	action := c.QueryParam("action")
	if action != "" && action != "status" {
		return writeError(c, apierr.New(apierr.KindValidation, "unknown parallel query action: "+action))
	}
	batchID := c.QueryParam("batchId")
	if err := requireField("batchId", batchID); err != nil {
		return writeError(c, err)
	}

	resp, err := s.parallel.Status(c.Request().Context(), batchID)
	if err != nil {
		return writeError(c, mapParallelError(err))
	}
	return c.JSON(http.StatusOK, resp)
}
