package devloop

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/developmentiteration"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/compliance"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// Manager runs the development iteration loop for a session.
type Manager struct {
	client    *ent.Client
	store     *artifact.Store
	llm       *llmexec.Executor
	publisher *events.EventPublisher
}

// NewManager creates a Manager. publisher may be nil (progress events
// disabled, e.g. in tests).
func NewManager(client *ent.Client, store *artifact.Store, llm *llmexec.Executor, publisher *events.EventPublisher) *Manager {
	return &Manager{client: client, store: store, llm: llm, publisher: publisher}
}

// Run drives one task's inner development loop to a terminal iteration:
// generate, analyze, gate, and either stop or feed the findings back into
// another generation round. Always persists at least one
// DevelopmentIteration and returns the last one recorded.
func (m *Manager) Run(ctx context.Context, req RunRequest) (*ent.DevelopmentIteration, error) {
	if req.MaxIterations <= 0 {
		req.MaxIterations = 1
	}

	var (
		lastIter *ent.DevelopmentIteration
		feedback []string
	)
	for n := 1; ; n++ {
		result, report, err := m.generate(ctx, req, n, feedback)
		if err != nil {
			return nil, err
		}

		nextAction := decideNextAction(report)
		iter, err := m.persist(ctx, req, n, result, report, nextAction)
		if err != nil {
			return nil, err
		}
		lastIter = iter

		if m.publisher != nil {
			_ = m.publisher.PublishDevIteration(ctx, req.SessionID, n, report.Score, nextAction)
		}

		done := n >= req.MaxIterations || nextAction == ActionBlocked
		if req.SchemaValidated && nextAction == ActionCompleted {
			done = true
		}
		if done {
			break
		}
		feedback = report.Recommendations
	}
	return lastIter, nil
}

// decideNextAction derives the quality-gate outcome of one iteration's
// compliance report.
func decideNextAction(report *compliance.Report) string {
	critical := report.IssueCountsBySeverity[compliance.SeverityCritical]
	switch {
	case critical > 0:
		return ActionBlocked
	case report.Score >= 90:
		return ActionCompleted
	default:
		return ActionCodeReview
	}
}

// generate runs one LLM turn for the task, folding the previous round's
// feedback into the prompt when present, and analyzes the result.
func (m *Manager) generate(ctx context.Context, req RunRequest, iteration int, feedback []string) (*llmexec.Result, *compliance.Report, error) {
	sysPrompt, err := m.llm.AssembleSystemPrompt(ctx, req.WorkspaceID, req.SessionID, req.AgentName, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("devloop: failed to assemble context for task %s: %w", req.TaskID, err)
	}

	userContent := req.Prompt
	if len(feedback) > 0 {
		userContent = fmt.Sprintf("%s\n\nAddress this feedback from the previous iteration:\n- %s", req.Prompt, strings.Join(feedback, "\n- "))
	}

	result, err := m.llm.Execute(ctx, llmexec.Request{
		SessionID: req.SessionID,
		AgentName: req.AgentName,
		Messages: []llmexec.Message{
			{Role: llmexec.RoleSystem, Content: sysPrompt},
			{Role: llmexec.RoleUser, Content: userContent},
		},
	}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("devloop: iteration %d failed for task %s: %w", iteration, req.TaskID, err)
	}

	report := compliance.Analyze([]compliance.File{{Path: req.FilePath, Content: result.Text}})
	return result, report, nil
}

// persist stores the generated output as a code artifact, records the
// DevelopmentIteration row, and returns it.
func (m *Manager) persist(ctx context.Context, req RunRequest, n int, result *llmexec.Result, report *compliance.Report, nextAction string) (*ent.DevelopmentIteration, error) {
	referenceKey := fmt.Sprintf("@%s/%s", req.AgentName, req.TaskID)
	if _, err := m.store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  req.WorkspaceID,
		SessionID:    req.SessionID,
		SourceAgent:  req.AgentName,
		ArtifactType: "code",
		ReferenceKey: referenceKey,
		Phase:        4,
		Payload:      map[string]interface{}{"text": result.Text, "path": req.FilePath},
	}); err != nil {
		return nil, fmt.Errorf("devloop: failed to persist code artifact for task %s: %w", req.TaskID, err)
	}

	for _, fileReq := range result.FileArtifactRequests(req.WorkspaceID, req.SessionID, req.AgentName, 4) {
		if _, err := m.store.Put(ctx, fileReq); err != nil {
			return nil, fmt.Errorf("devloop: failed to persist file artifact for task %s: %w", req.TaskID, err)
		}
	}

	reportMap, err := reportToMap(report)
	if err != nil {
		return nil, err
	}

	status := developmentiteration.StatusInProgress
	var completedAt time.Time
	completed := false
	switch nextAction {
	case ActionCompleted:
		status, completed = developmentiteration.StatusCompleted, true
	case ActionBlocked:
		status, completed = developmentiteration.StatusFailed, true
	}
	if completed {
		completedAt = time.Now()
	}

	create := m.client.DevelopmentIteration.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetWorkspaceID(req.WorkspaceID).
		SetTaskID(req.TaskID).
		SetIterationNumber(n).
		SetFilesChanged([]string{req.FilePath}).
		SetComplianceReport(reportMap).
		SetFeedback(report.Recommendations).
		SetStatus(status)
	if completed {
		create = create.SetCompletedAt(completedAt)
	}

	iter, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("devloop: failed to persist iteration %d for task %s: %w", n, req.TaskID, err)
	}
	return iter, nil
}

// reportToMap round-trips a compliance.Report through JSON into the plain
// map[string]interface{} shape ent.JSON fields require.
func reportToMap(report *compliance.Report) (map[string]interface{}, error) {
	b, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("devloop: failed to marshal compliance report: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("devloop: failed to decode compliance report: %w", err)
	}
	return m, nil
}
