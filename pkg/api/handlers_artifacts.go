package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// handleArtifactsGet handles GET /artifacts/{sessionId}: list
// (statistics), get a single reference_key, or parse_refs out of free
// text.
func (s *Server) handleArtifactsGet(c *echo.Context) error {
	sessionID := c.Param("sessionId")
	workspaceID := c.QueryParam("workspace_id")
	if err := requireField("workspace_id", workspaceID); err != nil {
		return writeError(c, err)
	}
	ctx := c.Request().Context()

	action := c.QueryParam("action")
	if action == "" {
		action = "list"
	}

	switch action {
	case "list":
		stats, err := s.artifacts.Statistics(ctx, workspaceID, sessionID)
		if err != nil {
			return writeError(c, mapArtifactError(err))
		}
		return c.JSON(http.StatusOK, stats)

	case "get":
		referenceKey := c.QueryParam("reference_key")
		if err := requireField("reference_key", referenceKey); err != nil {
			return writeError(c, err)
		}
		art, err := s.artifacts.Get(ctx, workspaceID, sessionID, referenceKey)
		if err != nil {
			return writeError(c, mapArtifactError(err))
		}
		return c.JSON(http.StatusOK, art)

	case "parse_refs":
		text := c.QueryParam("text")
		return c.JSON(http.StatusOK, map[string]any{"refs": artifact.ParseRefs(text)})

	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown artifacts action: "+action))
	}
}

// artifactsPostRequest is the single envelope POST /artifacts/{sessionId}
// accepts, shaped by its action field: put a new artifact version, or
// resolve a set of refs into a deterministic textual projection.
type artifactsPostRequest struct {
	Action      string               `json:"action"`
	WorkspaceID string               `json:"workspace_id"`
	SourceAgent string               `json:"source_agent,omitempty"`
	ArtifactType string              `json:"artifact_type,omitempty"`
	ReferenceKey string              `json:"reference_key,omitempty"`
	Phase       int                  `json:"phase,omitempty"`
	Payload     map[string]any       `json:"payload,omitempty"`
	Metadata    map[string]any       `json:"metadata,omitempty"`
	Refs        []models.ArtifactRef `json:"refs,omitempty"`
}

// handleArtifactsPost handles POST /artifacts/{sessionId}
// (action=put|resolve).
func (s *Server) handleArtifactsPost(c *echo.Context) error {
	sessionID := c.Param("sessionId")
	var req artifactsPostRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := requireField("workspace_id", req.WorkspaceID); err != nil {
		return writeError(c, err)
	}
	ctx := c.Request().Context()

	switch req.Action {
	case "put":
		if err := requireField("reference_key", req.ReferenceKey); err != nil {
			return writeError(c, err)
		}
		id, err := s.artifacts.Put(ctx, models.PutArtifactRequest{
			WorkspaceID:  req.WorkspaceID,
			SessionID:    sessionID,
			SourceAgent:  req.SourceAgent,
			ArtifactType: req.ArtifactType,
			ReferenceKey: req.ReferenceKey,
			Phase:        req.Phase,
			Payload:      req.Payload,
			Metadata:     req.Metadata,
		})
		if err != nil {
			return writeError(c, mapArtifactError(err))
		}
		return c.JSON(http.StatusCreated, map[string]string{"artifact_id": id})

	case "resolve":
		resolved, err := s.artifacts.Resolve(ctx, req.WorkspaceID, sessionID, req.Refs)
		if err != nil {
			return writeError(c, mapArtifactError(err))
		}
		return c.JSON(http.StatusOK, resolved)

	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown artifacts action: "+req.Action))
	}
}
