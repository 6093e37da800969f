package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
)

// claudeMessage is the wire shape of one llmexec.Message.
type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeExecuteRequest is the POST /claude/execute body: a direct LLM
// invocation against explicit session context, bypassing the workflow
// manager's phase-bound dispatch. Used by callers (e.g. the CLI, or a
// debugging client) that already know exactly which subagent and turns
// they want executed.
type claudeExecuteRequest struct {
	SessionID string          `json:"session_id"`
	AgentName string          `json:"agent_name"`
	Messages  []claudeMessage `json:"messages"`
	Model     string          `json:"model,omitempty"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

// handleClaudeExecute handles POST /claude/execute: streams the
// execution as Server-Sent Events (stream_start, message, tool_use,
// stream_complete, error).
func (s *Server) handleClaudeExecute(c *echo.Context) error {
	var req claudeExecuteRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if err := requireField("session_id", req.SessionID); err != nil {
		return writeError(c, err)
	}
	if err := requireField("agent_name", req.AgentName); err != nil {
		return writeError(c, err)
	}
	if len(req.Messages) == 0 {
		return writeError(c, apierr.New(apierr.KindValidation, "messages must not be empty"))
	}

	sse, err := newSSEWriter(c.Response())
	if err != nil {
		return writeError(c, apierr.Wrap(apierr.KindInternal, "streaming unsupported", err))
	}

	messages := make([]llmexec.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = llmexec.Message{Role: llmexec.Role(m.Role), Content: m.Content}
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	s.streams.register(req.SessionID, cancel)
	defer s.streams.unregister(req.SessionID)

	messageNumber := 0
	_ = sse.writeEvent(events.EventTypeStreamStart, map[string]any{"session_id": req.SessionID, "agent_name": req.AgentName})

	result, execErr := s.llm.Execute(ctx, llmexec.Request{
		SessionID: req.SessionID,
		AgentName: req.AgentName,
		Messages:  messages,
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	}, func(chunk llmexec.Chunk) {
		switch chunk.Type {
		case llmexec.ChunkText:
			messageNumber++
			_ = sse.writeEvent(events.EventTypeMessage, map[string]any{
				"content": chunk.Text, "message_number": messageNumber,
			})
		case llmexec.ChunkToolUse:
			_ = sse.writeEvent(events.EventTypeToolUse, map[string]any{
				"tool_name": chunk.ToolName, "input": chunk.ToolArgs,
			})
		case llmexec.ChunkError:
			_ = sse.writeEvent(events.EventTypeStreamError, map[string]any{
				"kind": string(chunk.Kind), "message": chunk.Err.Error(),
			})
		}
	})
	if execErr != nil {
		_ = sse.writeEvent(events.EventTypeStreamError, map[string]any{
			"kind": "sdk", "message": execErr.Error(),
		})
		return nil
	}

	_ = sse.writeEvent(events.EventTypeStreamComplete, map[string]any{
		"total_messages": messageNumber,
		"input_tokens":   result.InputTokens,
		"output_tokens":  result.OutputTokens,
	})
	return nil
}

// claudeSyncRequest is the POST /claude/sync body.
type claudeSyncRequest struct {
	SessionID string `json:"session_id"`
	Direction string `json:"direction"`
}

// handleClaudeSync handles POST /claude/sync?direction=to_target|from_target,
// running the context synchronizer in one direction.
func (s *Server) handleClaudeSync(c *echo.Context) error {
	var req claudeSyncRequest
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	if req.Direction == "" {
		req.Direction = c.QueryParam("direction")
	}
	if err := requireField("session_id", req.SessionID); err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	switch req.Direction {
	case "to_target":
		if err := s.sync.ToSandbox(ctx, req.SessionID); err != nil {
			return writeError(c, apierr.Wrap(apierr.KindSandboxCommand, "sync to sandbox failed", err))
		}
	case "from_target":
		if err := s.sync.FromSandbox(ctx, req.SessionID); err != nil {
			return writeError(c, apierr.Wrap(apierr.KindSandboxCommand, "sync from sandbox failed", err))
		}
	default:
		return writeError(c, apierr.New(apierr.KindValidation, "direction must be to_target or from_target"))
	}
	return c.JSON(http.StatusOK, map[string]string{"session_id": req.SessionID, "direction": req.Direction})
}
