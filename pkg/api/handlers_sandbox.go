package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
)

// sandboxRequest is the single envelope POST /sandbox accepts, shaped by
// its action field; unused fields for a given action are ignored.
type sandboxRequest struct {
	Action      string            `json:"action"`
	SessionID   string            `json:"session_id"`
	WorkspaceID string            `json:"workspace_id"`
	TemplateID  string            `json:"template_id,omitempty"`
	EnvVars     map[string]string `json:"env_vars,omitempty"`

	Command    string            `json:"command,omitempty"`
	WorkingDir string            `json:"working_dir,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
	TimeoutMs  int               `json:"timeout_ms,omitempty"`

	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`
	Dir     string `json:"dir,omitempty"`
	Port    int    `json:"port,omitempty"`
}

// handleSandbox handles POST /sandbox, dispatching on action to the
// sandbox manager.
func (s *Server) handleSandbox(c *echo.Context) error {
	var req sandboxRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := requireField("session_id", req.SessionID); err != nil {
		return writeError(c, err)
	}
	ctx := c.Request().Context()

	switch req.Action {
	case "create":
		if err := requireField("workspace_id", req.WorkspaceID); err != nil {
			return writeError(c, err)
		}
		env, err := s.sandbox.Create(ctx, req.SessionID, req.WorkspaceID, req.TemplateID, req.EnvVars)
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusCreated, env)

	case "execute":
		if err := requireField("command", req.Command); err != nil {
			return writeError(c, err)
		}
		result, err := s.sandbox.Execute(ctx, req.SessionID, req.Command, sandbox.ExecOptions{
			WorkingDir: req.WorkingDir,
			Env:        req.Env,
			TimeoutMs:  req.TimeoutMs,
		})
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusOK, result)

	case "write_file":
		if err := requireField("path", req.Path); err != nil {
			return writeError(c, err)
		}
		if err := s.sandbox.WriteFile(ctx, req.SessionID, req.Path, req.Content); err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.NoContent(http.StatusNoContent)

	case "read_file":
		if err := requireField("path", req.Path); err != nil {
			return writeError(c, err)
		}
		content, err := s.sandbox.ReadFile(ctx, req.SessionID, req.Path)
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusOK, map[string]string{"path": req.Path, "content": content})

	case "list_files":
		entries, err := s.sandbox.List(ctx, req.SessionID, req.Dir)
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusOK, map[string]any{"dir": req.Dir, "entries": entries})

	case "get_state":
		url, err := s.sandbox.PreviewURL(ctx, req.SessionID, req.Port)
		if err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.JSON(http.StatusOK, map[string]string{"preview_url": url})

	case "terminate":
		if err := s.sandbox.Terminate(ctx, req.SessionID); err != nil {
			return writeError(c, mapSandboxError(err))
		}
		return c.NoContent(http.StatusNoContent)

	default:
		return writeError(c, apierr.New(apierr.KindValidation, "unknown sandbox action: "+req.Action))
	}
}
