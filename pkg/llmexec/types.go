// Package llmexec implements the LLM executor: the single chokepoint
// through which every subagent turn calls out to the underlying language
// model. It streams a text/tool-use/tool-result chunk taxonomy and
// serializes concurrent calls per session.
package llmexec

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/builder/pkg/models"
)

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role       Role
	Content    string
	ToolCallID string
	ToolName   string
}

// ToolDefinition describes a tool the model may invoke.
type ToolDefinition struct {
	Name             string
	Description      string
	ParametersSchema string // JSON Schema
}

// Request is everything needed to drive a single LLM turn.
type Request struct {
	SessionID string
	AgentName string
	Messages  []Message
	Tools     []ToolDefinition
	Model     string
	MaxTokens int
}

// ChunkType classifies a streaming chunk.
type ChunkType string

const (
	ChunkText       ChunkType = "text"
	ChunkToolUse    ChunkType = "tool_use"
	ChunkToolResult ChunkType = "tool_result"
	ChunkUsage      ChunkType = "usage"
	ChunkError      ChunkType = "error"
)

// Chunk is one unit of a streaming response.
type Chunk struct {
	Type ChunkType

	Text string // ChunkText

	ToolCallID string // ChunkToolUse / ChunkToolResult
	ToolName   string
	ToolArgs   string // JSON, ChunkToolUse
	ToolResult string // ChunkToolResult

	InputTokens  int // ChunkUsage
	OutputTokens int

	Err  error // ChunkError
	Kind ErrorKind
}

// ErrorKind classifies a terminal execution error so callers can decide
// whether to retry, surface to the user, or fail the session outright.
type ErrorKind string

const (
	ErrorKindAuth    ErrorKind = "auth"
	ErrorKindNetwork ErrorKind = "network"
	ErrorKindTimeout ErrorKind = "timeout"
	ErrorKindSDK     ErrorKind = "sdk"
	ErrorKindUnknown ErrorKind = "unknown"
)

// Result is the fully drained outcome of one Execute call.
type Result struct {
	Text          string
	ToolCalls     []ToolCallResult
	Artifacts     []FileArtifact
	FilesModified []string
	InputTokens   int
	OutputTokens  int
	Duration      time.Duration
	Success       bool
	Error         string
}

// ToolCallResult is one tool invocation the model requested.
type ToolCallResult struct {
	CallID string
	Name   string
	Args   string
}

// FileOperation classifies a file-shaped tool call recorded as a
// FileArtifact.
type FileOperation string

const (
	FileOperationWrite FileOperation = "write"
	FileOperationEdit  FileOperation = "edit"
)

// Tool names the sandbox's dev-tool surface exposes for file mutation;
// this is the same vocabulary pkg/registry.SubagentDescriptor.AllowedTools
// declares in MCP tool-definition shape, so a ChunkToolUse naming one of
// these is always classified as a file-write/edit side effect.
const (
	ToolWriteFile = "write_file"
	ToolEditFile  = "edit_file"
)

// FileArtifact is a file-write/edit side effect surfaced from a tool call
// during Execute: every such call becomes one FileArtifact in
// Result.Artifacts, and its path is added to Result.FilesModified.
type FileArtifact struct {
	Type      string // always "file"
	Path      string
	Content   string
	Operation FileOperation
}

// Provider is the pluggable transport to the underlying model API.
type Provider interface {
	Stream(ctx context.Context, req Request) (<-chan Chunk, error)
}

// FileArtifactRequests turns every FileArtifact recorded on the result
// into a PutArtifactRequest, one per file touched, ready for
// artifact.Store.Put. Callers invoke this once the stream has fully
// drained — the single post-pass that follows Execute, never something
// done mid-stream — to project tool-use side effects into the artifact
// store alongside the phase's primary text artifact.
func (r *Result) FileArtifactRequests(workspaceID, sessionID, sourceAgent string, phase int) []models.PutArtifactRequest {
	reqs := make([]models.PutArtifactRequest, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		reqs = append(reqs, models.PutArtifactRequest{
			WorkspaceID:  workspaceID,
			SessionID:    sessionID,
			SourceAgent:  sourceAgent,
			ArtifactType: "code",
			ReferenceKey: fmt.Sprintf("@%s/file/%s", sourceAgent, a.Path),
			Phase:        phase,
			Payload: map[string]interface{}{
				"type":      a.Type,
				"path":      a.Path,
				"content":   a.Content,
				"operation": string(a.Operation),
			},
		})
	}
	return reqs
}
