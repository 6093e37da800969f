package llmexec

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// complianceReminder is appended to every assembled system prompt so
// subagents are steered toward passing the compliance gates before
// the dev loop ever sees their output.
const complianceReminder = `Before returning, verify your output: every query touches workspace_id or tenant_id, every handler checks identity, errors are logged not swallowed, and no secret literals appear in code or comments.`

// Executor is the single chokepoint through which every subagent turn
// calls the model. At most one stream is in flight per session at a
// time; a second call for the same session blocks until the first
// completes.
type Executor struct {
	provider Provider
	store    *artifact.Store

	locks sync.Map // session_id -> *sync.Mutex

	cancelledMu sync.Mutex
	cancelled   map[string]bool // session_id -> true while a drop is in flight
}

// NewExecutor creates an Executor bound to a streaming Provider and the
// artifact store used for context assembly.
func NewExecutor(provider Provider, store *artifact.Store) *Executor {
	return &Executor{
		provider:  provider,
		store:     store,
		cancelled: make(map[string]bool),
	}
}

func (e *Executor) lockFor(sessionID string) *sync.Mutex {
	muI, _ := e.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return muI.(*sync.Mutex)
}

// Execute serializes on the session lock and drains
// the provider's stream into a single Result. The caller may pass a
// sink to observe chunks as they arrive (e.g. to forward over SSE); sink
// may be nil.
func (e *Executor) Execute(ctx context.Context, req Request, sink func(Chunk)) (*Result, error) {
	lock := e.lockFor(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	e.clearCancelled(req.SessionID)

	start := time.Now()
	ch, err := e.provider.Stream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llmexec: failed to start stream: %w", err)
	}

	result := &Result{}
	toolCalls := map[string]*ToolCallResult{}
	var order []string

	for chunk := range ch {
		if e.isCancelled(req.SessionID) {
			// Drain silently: the provider stream runs to completion even
			// after cancellation, but delivery to the caller is suppressed.
			continue
		}
		switch chunk.Type {
		case ChunkText:
			result.Text += chunk.Text
		case ChunkToolUse:
			if _, ok := toolCalls[chunk.ToolCallID]; !ok {
				order = append(order, chunk.ToolCallID)
			}
			toolCalls[chunk.ToolCallID] = &ToolCallResult{
				CallID: chunk.ToolCallID, Name: chunk.ToolName, Args: chunk.ToolArgs,
			}
		case ChunkUsage:
			result.InputTokens += chunk.InputTokens
			result.OutputTokens += chunk.OutputTokens
		case ChunkError:
			if sink != nil {
				sink(chunk)
			}
			err := classifyError(chunk)
			result.Duration = time.Since(start)
			result.Success = false
			result.Error = err.Error()
			return result, err
		}
		if sink != nil {
			sink(chunk)
		}
	}

	seenFiles := map[string]bool{}
	for _, id := range order {
		tc := *toolCalls[id]
		result.ToolCalls = append(result.ToolCalls, tc)
		if a, ok := classifyFileToolCall(tc.Name, tc.Args); ok {
			result.Artifacts = append(result.Artifacts, a)
			if !seenFiles[a.Path] {
				seenFiles[a.Path] = true
				result.FilesModified = append(result.FilesModified, a.Path)
			}
		}
	}
	result.Duration = time.Since(start)
	result.Success = true
	return result, nil
}

// classifyFileToolCall recognizes a file-write/edit tool call and turns
// it into a FileArtifact: a new artifact is emitted for every such
// call, with the path recorded in FilesModified, rather than having
// callers special-case tool names themselves.
func classifyFileToolCall(name, args string) (FileArtifact, bool) {
	var op FileOperation
	switch name {
	case ToolWriteFile:
		op = FileOperationWrite
	case ToolEditFile:
		op = FileOperationEdit
	default:
		return FileArtifact{}, false
	}

	var parsed struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(args), &parsed); err != nil || parsed.Path == "" {
		return FileArtifact{}, false
	}
	return FileArtifact{Type: "file", Path: parsed.Path, Content: parsed.Content, Operation: op}, true
}

// Cancel marks a session's in-flight stream as cancelled. Delivery to the
// caller's sink stops immediately; the underlying provider stream is left
// to run to completion and its remaining chunks are discarded, since most
// provider SDKs have no mid-stream abort primitive that doesn't also
// corrupt billing/usage accounting.
func (e *Executor) Cancel(sessionID string) {
	e.cancelledMu.Lock()
	defer e.cancelledMu.Unlock()
	e.cancelled[sessionID] = true
}

func (e *Executor) isCancelled(sessionID string) bool {
	e.cancelledMu.Lock()
	defer e.cancelledMu.Unlock()
	return e.cancelled[sessionID]
}

func (e *Executor) clearCancelled(sessionID string) {
	e.cancelledMu.Lock()
	defer e.cancelledMu.Unlock()
	delete(e.cancelled, sessionID)
}

// AssembleSystemPrompt builds the system-role content for a subagent
// turn: session metadata, the resolved upstream artifact context, and
// the compliance reminder, in that fixed order.
func (e *Executor) AssembleSystemPrompt(ctx context.Context, workspaceID, sessionID, agentRole string, refs []models.ArtifactRef) (string, error) {
	resolved, err := e.store.Resolve(ctx, workspaceID, sessionID, refs)
	if err != nil {
		return "", fmt.Errorf("llmexec: failed to resolve context: %w", err)
	}

	prompt := fmt.Sprintf("You are acting as %s for session %s.\n\n", agentRole, sessionID)
	if resolved.Text != "" {
		prompt += resolved.Text + "\n\n"
	}
	prompt += complianceReminder
	return prompt, nil
}

func classifyError(c Chunk) error {
	if c.Err != nil {
		return c.Err
	}
	return fmt.Errorf("llmexec: stream error (%s)", c.Kind)
}
