package parallel_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/parallelbatch"
	"github.com/codeready-toolchain/builder/ent/paralleltask"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/stretchr/testify/require"
)

// fakeLLMProvider answers every Stream call with a single text chunk
// derived from the request's prompt, optionally failing for a configured
// agent name to exercise the failure/short-circuit path.
type fakeLLMProvider struct {
	failFor map[string]bool
}

func (f *fakeLLMProvider) Stream(ctx context.Context, req llmexec.Request) (<-chan llmexec.Chunk, error) {
	ch := make(chan llmexec.Chunk, 2)
	if f.failFor[req.AgentName] {
		ch <- llmexec.Chunk{Type: llmexec.ChunkError, Err: context.DeadlineExceeded, Kind: llmexec.ErrorKindNetwork}
		close(ch)
		return ch, nil
	}
	ch <- llmexec.Chunk{Type: llmexec.ChunkText, Text: "done: " + req.AgentName}
	close(ch)
	return ch, nil
}

func newProcessor(t *testing.T, sessionID string, fail map[string]bool) (*parallel.Processor, context.Context) {
	p, _, ctx := newProcessorWithClient(t, sessionID, fail)
	return p, ctx
}

func newProcessorWithClient(t *testing.T, sessionID string, fail map[string]bool) (*parallel.Processor, *ent.Client, context.Context) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	_, err := client.Session.Create().
		SetID(sessionID).SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	llm := llmexec.NewExecutor(&fakeLLMProvider{failFor: fail}, store)
	p := parallel.NewProcessor(client, store, llm, nil)
	p.TaskTimeout = 2 * time.Second
	p.RetryAttempts = 0
	return p, client, ctx
}

func TestProcessor_EmptyBatchCompletesImmediately(t *testing.T) {
	p, ctx := newProcessor(t, "sess-empty", nil)
	batch, err := p.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   "sess-empty",
		WorkspaceID: "ws-1",
		Phase:       4,
	})
	require.NoError(t, err)
	require.Equal(t, parallelbatch.StatusCompleted, batch.Status)
}

func TestProcessor_IndependentTasksAllSucceed(t *testing.T) {
	p, ctx := newProcessor(t, "sess-wave", nil)
	batch, err := p.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   "sess-wave",
		WorkspaceID: "ws-1",
		Phase:       4,
		Tasks: []models.CreateTaskRequest{
			{LocalID: "t1", AgentName: "component-researcher", Prompt: "research"},
			{LocalID: "t2", AgentName: "integration-expert", Prompt: "integrate"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, parallelbatch.StatusCompleted, batch.Status)
	require.Len(t, batch.Results, 2)
}

func TestProcessor_CyclicDependencyRejectedBeforePersist(t *testing.T) {
	p, ctx := newProcessor(t, "sess-cycle", nil)
	_, err := p.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   "sess-cycle",
		WorkspaceID: "ws-1",
		Phase:       4,
		Tasks: []models.CreateTaskRequest{
			{LocalID: "A", AgentName: "code-generator", Prompt: "a", Dependencies: []string{"B"}},
			{LocalID: "B", AgentName: "code-generator", Prompt: "b", Dependencies: []string{"A"}},
		},
	})
	require.ErrorIs(t, err, parallel.ErrCyclicDependency)
}

func TestProcessor_StrictDependentCancelledOnFailure(t *testing.T) {
	p, ctx := newProcessor(t, "sess-dep-fail", map[string]bool{"code-generator": true})
	batch, err := p.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   "sess-dep-fail",
		WorkspaceID: "ws-1",
		Phase:       4,
		Tasks: []models.CreateTaskRequest{
			{LocalID: "t1", AgentName: "code-generator", Prompt: "fails"},
			{LocalID: "t2", AgentName: "integration-expert", Prompt: "depends", Dependencies: []string{"t1"}},
		},
	})
	require.NoError(t, err)
	require.Equal(t, parallelbatch.StatusFailed, batch.Status)

	tasks, err := p.Status(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, tasks.Tasks, 2)
	byAgent := map[string]paralleltask.Status{}
	for _, task := range tasks.Tasks {
		byAgent[task.AgentName] = task.Status
	}
	require.Equal(t, paralleltask.StatusFailed, byAgent["code-generator"])
	require.Equal(t, paralleltask.StatusCancelled, byAgent["integration-expert"])
}

func TestProcessor_DoubleBatchRejected(t *testing.T) {
	p, client, ctx := newProcessorWithClient(t, "sess-double", nil)

	_, err := client.ParallelBatch.Create().
		SetID("batch-active").
		SetSessionID("sess-double").
		SetWorkspaceID("ws-1").
		SetPhase(4).
		SetStatus(parallelbatch.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	_, err = p.CreateAndExecute(ctx, models.CreateBatchRequest{
		SessionID:   "sess-double",
		WorkspaceID: "ws-1",
		Phase:       4,
		Tasks: []models.CreateTaskRequest{
			{LocalID: "t1", AgentName: "code-generator", Prompt: "b"},
		},
	})
	require.ErrorIs(t, err, parallel.ErrBatchAlreadyActive)
}

func TestProcessor_Reconcile_RequeuesOrphanedTasks(t *testing.T) {
	p, ctx := newProcessor(t, "sess-reconcile", nil)
	n, err := p.Reconcile(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
