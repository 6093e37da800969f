// Package workflow implements the workflow manager: the top-level
// seven-phase state machine that turns a user's product idea into a
// working application, one user turn at a time. Each turn dispatches the
// phase's bound subagent (directly via the LLM executor for
// single-agent phases, or through the parallel processor and development
// loop for phase 4), persists the turn's output as an artifact, and
// decides whether to advance to the next phase.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/developmentiteration"
	"github.com/codeready-toolchain/builder/ent/paralleltask"
	"github.com/codeready-toolchain/builder/ent/session"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/devloop"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/registry"
)

// Manager drives the seven-phase workflow state machine.
type Manager struct {
	client    *ent.Client
	store     *artifact.Store
	registry  *registry.Registry
	llm       *llmexec.Executor
	parallel  *parallel.Processor
	devloop   *devloop.Manager
	publisher *events.EventPublisher
}

// NewManager creates a Manager. publisher may be nil (progress events
// disabled, e.g. in tests).
func NewManager(client *ent.Client, store *artifact.Store, reg *registry.Registry, llm *llmexec.Executor, proc *parallel.Processor, dev *devloop.Manager, publisher *events.EventPublisher) *Manager {
	return &Manager{client: client, store: store, registry: reg, llm: llm, parallel: proc, devloop: dev, publisher: publisher}
}

// Advance processes one user turn against a session's current phase: it
// dispatches the bound subagent(s), persists their output, and advances
// the phase if the turn's self-reported confidence clears
// ConfidenceThreshold or the caller explicitly confirms. The session
// load is scoped to the caller's workspace; a miss in either dimension
// is ErrSessionNotFound.
func (m *Manager) Advance(ctx context.Context, req models.AdvanceWorkflowRequest) (*models.AdvanceWorkflowResponse, error) {
	sess, err := m.client.Session.Query().
		Where(session.ID(req.SessionID), session.WorkspaceID(req.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("workflow: failed to load session %s: %w", req.SessionID, err)
	}
	if sess.Status != session.StatusActive {
		return nil, ErrSessionNotActive
	}

	phase := phaseByNumber(sess.CurrentPhase)
	if phase == nil {
		return nil, ErrUnknownPhase
	}

	var (
		responseText string
		refs         []string
		confidence   float64
	)
	switch phase.Number {
	case 4:
		responseText, refs, confidence, err = m.runDevelopmentPhase(ctx, sess, req.UserTurn)
	case TotalPhases:
		responseText, refs, confidence, err = m.runCompletionPhase(ctx, sess)
	default:
		responseText, refs, confidence, err = m.runSingleAgentPhase(ctx, sess, *phase, req.UserTurn)
	}
	if err != nil {
		return nil, err
	}

	advanced := false
	if confidence >= ConfidenceThreshold || req.Confirm {
		advanced, err = m.advancePhase(ctx, sess)
		if err != nil {
			return nil, err
		}
	}

	return &models.AdvanceWorkflowResponse{
		SessionID:     sess.ID,
		Phase:         sess.CurrentPhase,
		Response:      responseText,
		ArtifactRefs:  refs,
		PhaseAdvanced: advanced,
		Confidence:    confidence,
	}, nil
}

// Regress moves a session back to an earlier phase without touching any
// previously persisted artifact: the artifact store is append-only and
// nothing here writes to it.
func (m *Manager) Regress(ctx context.Context, sessionID string, targetPhase int) error {
	sess, err := m.client.Session.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("workflow: failed to load session %s: %w", sessionID, err)
	}
	if targetPhase < 1 || targetPhase >= sess.CurrentPhase {
		return ErrInvalidRegression
	}

	update := m.client.Session.UpdateOneID(sessionID).
		SetCurrentPhase(targetPhase).
		SetStatus(session.StatusActive)
	if desc, ok := m.primaryFor(targetPhase); ok {
		update = update.SetSubagentRole(desc.Name)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("workflow: failed to regress session %s to phase %d: %w", sessionID, targetPhase, err)
	}
	if m.publisher != nil {
		_ = m.publisher.PublishSessionStatus(ctx, sessionID, targetPhase, string(session.StatusActive))
	}
	return nil
}

// runSingleAgentPhase dispatches phases 1, 2, 3, 5, and 6: a single
// LLM turn against the phase's primary subagent, with the session's
// upstream artifacts resolved into context.
func (m *Manager) runSingleAgentPhase(ctx context.Context, sess *ent.Session, phase Phase, userTurn string) (string, []string, float64, error) {
	desc, ok := m.primaryFor(phase.Number)
	if !ok {
		return "", nil, 0, fmt.Errorf("%w %d", ErrNoSubagentForPhase, phase.Number)
	}

	sysPrompt, err := m.llm.AssembleSystemPrompt(ctx, sess.WorkspaceID, sess.ID, desc.Name, m.upstreamRefs(phase.Number))
	if err != nil {
		return "", nil, 0, fmt.Errorf("workflow: failed to assemble context for phase %d: %w", phase.Number, err)
	}

	result, err := m.llm.Execute(ctx, llmexec.Request{
		SessionID: sess.ID,
		AgentName: desc.Name,
		Tools:     toolDefinitions(desc.AllowedTools),
		Messages: []llmexec.Message{
			{Role: llmexec.RoleSystem, Content: sysPrompt},
			{Role: llmexec.RoleSystem, Content: "End your response with a line 'CONFIDENCE: <0-1>' stating how ready this phase's output is to advance."},
			{Role: llmexec.RoleUser, Content: userTurn},
		},
	}, nil)
	if err != nil {
		return "", nil, 0, fmt.Errorf("workflow: phase %d execution failed: %w", phase.Number, err)
	}

	referenceKey := fmt.Sprintf("@%s/%s", desc.Name, phase.ArtifactType)
	if _, err := m.store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  sess.WorkspaceID,
		SessionID:    sess.ID,
		SourceAgent:  desc.Name,
		ArtifactType: phase.ArtifactType,
		ReferenceKey: referenceKey,
		Phase:        phase.Number,
		Payload:      map[string]interface{}{"text": result.Text},
	}); err != nil {
		return "", nil, 0, fmt.Errorf("workflow: failed to persist phase %d artifact: %w", phase.Number, err)
	}
	refs := []string{referenceKey}

	for _, fileReq := range result.FileArtifactRequests(sess.WorkspaceID, sess.ID, desc.Name, phase.Number) {
		if _, err := m.store.Put(ctx, fileReq); err != nil {
			return "", nil, 0, fmt.Errorf("workflow: failed to persist file artifact for phase %d: %w", phase.Number, err)
		}
		refs = append(refs, fileReq.ReferenceKey)
	}

	return result.Text, refs, parseConfidence(result.Text), nil
}

// runDevelopmentPhase dispatches phase 4: it turns the user's turn into a
// one-task parallel batch bound to the code-generator subagent (so a
// multi-task plan can fan out the same way in a future turn), then runs
// every successful task's output through the development loop until it
// clears the quality gates or exhausts its iteration budget.
func (m *Manager) runDevelopmentPhase(ctx context.Context, sess *ent.Session, userTurn string) (string, []string, float64, error) {
	desc, ok := m.primaryFor(4)
	if !ok {
		return "", nil, 0, fmt.Errorf("%w 4", ErrNoSubagentForPhase)
	}

	batch, err := m.parallel.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   sess.ID,
		WorkspaceID: sess.WorkspaceID,
		Phase:       4,
		Tasks: []models.CreateTaskRequest{{
			LocalID:      "0",
			AgentName:    desc.Name,
			Prompt:       userTurn,
			ArtifactType: "code",
			ContextRefs:  m.upstreamReferenceKeys(4),
			Priority:     "high",
		}},
	})
	if err != nil {
		return "", nil, 0, fmt.Errorf("workflow: phase 4 batch dispatch failed: %w", err)
	}

	tasks, err := m.client.ParallelTask.Query().Where(paralleltask.BatchID(batch.ID)).All(ctx)
	if err != nil {
		return "", nil, 0, fmt.Errorf("workflow: failed to load phase 4 tasks: %w", err)
	}

	var refs []string
	var lines []string
	allClean := len(tasks) > 0
	for _, t := range tasks {
		if t.Status != paralleltask.StatusSucceeded {
			allClean = false
			lines = append(lines, fmt.Sprintf("%s: task did not succeed (%s)", t.AgentName, t.Status))
			continue
		}

		iter, err := m.devloop.Run(ctx, devloop.RunRequest{
			WorkspaceID:     sess.WorkspaceID,
			SessionID:       sess.ID,
			TaskID:          t.ID,
			AgentName:       t.AgentName,
			Prompt:          t.Prompt,
			FilePath:        fmt.Sprintf("%s/%s.go", t.AgentName, t.ID),
			SchemaValidated: desc.SchemaValidatedOutput,
			MaxIterations:   desc.MaxIterations,
		})
		if err != nil {
			return "", nil, 0, fmt.Errorf("workflow: development loop failed for task %s: %w", t.ID, err)
		}

		refs = append(refs, fmt.Sprintf("@%s/%s", t.AgentName, t.ID))
		lines = append(lines, fmt.Sprintf("%s: iteration %d, %s", t.AgentName, iter.IterationNumber, iter.Status))
		if iter.Status != developmentiteration.StatusCompleted {
			allClean = false
		}
	}

	confidence := 0.5
	if allClean {
		confidence = 0.9
	}
	return strings.Join(lines, "\n"), refs, confidence, nil
}

// runCompletionPhase closes out phase 7: no subagent is involved, the
// turn just snapshots the session's artifact inventory into a final
// artifact_index record so the finished build is self-describing.
func (m *Manager) runCompletionPhase(ctx context.Context, sess *ent.Session) (string, []string, float64, error) {
	stats, err := m.store.Statistics(ctx, sess.WorkspaceID, sess.ID)
	if err != nil {
		return "", nil, 0, fmt.Errorf("workflow: failed to summarize artifacts for completion: %w", err)
	}

	byAgent := map[string]interface{}{}
	for agent, n := range stats.ByAgent {
		byAgent[agent] = n
	}
	byType := map[string]interface{}{}
	for typ, n := range stats.ByType {
		byType[typ] = n
	}

	referenceKey := "@workflow/artifact_index"
	if _, err := m.store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  sess.WorkspaceID,
		SessionID:    sess.ID,
		SourceAgent:  "workflow",
		ArtifactType: "artifact_index",
		ReferenceKey: referenceKey,
		Phase:        TotalPhases,
		Payload: map[string]interface{}{
			"total":    stats.Total,
			"by_agent": byAgent,
			"by_type":  byType,
		},
	}); err != nil {
		return "", nil, 0, fmt.Errorf("workflow: failed to persist artifact index: %w", err)
	}

	text := fmt.Sprintf("Build complete: %d artifacts indexed under %s.", stats.Total, referenceKey)
	return text, []string{referenceKey}, 1.0, nil
}

// advancePhase moves a session to the next phase, or marks it completed
// once phase 7 clears.
func (m *Manager) advancePhase(ctx context.Context, sess *ent.Session) (bool, error) {
	next := sess.CurrentPhase + 1
	if next > TotalPhases {
		if err := m.client.Session.UpdateOneID(sess.ID).
			SetStatus(session.StatusCompleted).
			Exec(ctx); err != nil {
			return false, fmt.Errorf("workflow: failed to mark session %s completed: %w", sess.ID, err)
		}
		if m.publisher != nil {
			_ = m.publisher.PublishSessionStatus(ctx, sess.ID, sess.CurrentPhase, string(session.StatusCompleted))
		}
		return true, nil
	}

	update := m.client.Session.UpdateOneID(sess.ID).SetCurrentPhase(next)
	if desc, ok := m.primaryFor(next); ok {
		update = update.SetSubagentRole(desc.Name)
	}
	if err := update.Exec(ctx); err != nil {
		return false, fmt.Errorf("workflow: failed to advance session %s to phase %d: %w", sess.ID, next, err)
	}
	if m.publisher != nil {
		_ = m.publisher.PublishSessionStatus(ctx, sess.ID, next, string(session.StatusActive))
	}
	return true, nil
}

// primaryFor returns the phase's primary subagent: the first descriptor
// bound to it in name order. For phase 4 this is always "code-generator",
// since it alphabetically precedes "component-researcher" and
// "integration-expert", the phase's utility subagents.
func (m *Manager) primaryFor(phaseNumber int) (registry.SubagentDescriptor, bool) {
	descs := m.registry.ByPhase(phaseNumber)
	if len(descs) == 0 {
		return registry.SubagentDescriptor{}, false
	}
	return descs[0], true
}

// upstreamRefs resolves every phase strictly before currentPhase by
// artifact type, for injection into a single-agent phase's context.
func (m *Manager) upstreamRefs(currentPhase int) []models.ArtifactRef {
	var refs []models.ArtifactRef
	for _, p := range phases {
		if p.Number < currentPhase {
			refs = append(refs, models.ArtifactRef{Type: p.ArtifactType})
		}
	}
	return refs
}

// upstreamReferenceKeys returns the deterministic reference_key each
// earlier phase's primary subagent writes its output under, for a
// parallel task's context_refs.
func (m *Manager) upstreamReferenceKeys(currentPhase int) []string {
	var keys []string
	for _, p := range phases {
		if p.Number >= currentPhase {
			continue
		}
		if desc, ok := m.primaryFor(p.Number); ok {
			keys = append(keys, fmt.Sprintf("@%s/%s", desc.Name, p.ArtifactType))
		}
	}
	return keys
}

// toolDefinitions projects a descriptor's MCP tool descriptors into the
// executor's wire shape, marshaling each input schema to its JSON text.
func toolDefinitions(tools []registry.Capability) []llmexec.ToolDefinition {
	defs := make([]llmexec.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		schema := ""
		if t.InputSchema != nil {
			if b, err := json.Marshal(t.InputSchema); err == nil {
				schema = string(b)
			}
		}
		defs = append(defs, llmexec.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: schema,
		})
	}
	return defs
}

var confidenceRe = regexp.MustCompile(`(?i)confidence:\s*([01](?:\.\d+)?)`)

// parseConfidence extracts a subagent's self-reported confidence from its
// response text, defaulting to a neutral 0.75 when absent or malformed.
func parseConfidence(text string) float64 {
	match := confidenceRe.FindStringSubmatch(text)
	if match == nil {
		return 0.75
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil || v < 0 || v > 1 {
		return 0.75
	}
	return v
}
