package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/devloop"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/registry"
	"github.com/codeready-toolchain/builder/pkg/workflow"
	"github.com/codeready-toolchain/builder/test/util"
)

type scriptedProvider struct {
	text string
}

func (p *scriptedProvider) Stream(ctx context.Context, req llmexec.Request) (<-chan llmexec.Chunk, error) {
	ch := make(chan llmexec.Chunk, 2)
	ch <- llmexec.Chunk{Type: llmexec.ChunkText, Text: p.text}
	ch <- llmexec.Chunk{Type: llmexec.ChunkUsage, InputTokens: 5, OutputTokens: 5}
	close(ch)
	return ch, nil
}

func newTestManager(t *testing.T, text string) (*workflow.Manager, string) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	sessionID := "sess-wf-" + t.Name()
	_, err := client.Session.Create().
		SetID(sessionID).SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	provider := &scriptedProvider{text: text}
	llm := llmexec.NewExecutor(provider, store)
	reg := registry.Default()
	proc := parallel.NewProcessor(client, store, llm, nil)
	dev := devloop.NewManager(client, store, llm, nil)
	mgr := workflow.NewManager(client, store, reg, llm, proc, dev, nil)
	return mgr, sessionID
}

func TestManager_Advance_SingleAgentPhaseAdvancesOnHighConfidence(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "Here are the requirements.\nCONFIDENCE: 0.95")

	resp, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "a todo app with auth"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Phase)
	require.True(t, resp.PhaseAdvanced)
	require.InDelta(t, 0.95, resp.Confidence, 0.001)
	require.Len(t, resp.ArtifactRefs, 1)
}

func TestManager_Advance_StaysOnLowConfidenceWithoutConfirm(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "Here are some draft requirements.\nCONFIDENCE: 0.4")

	resp, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "a todo app"})
	require.NoError(t, err)
	require.False(t, resp.PhaseAdvanced)
}

func TestManager_Advance_ConfirmForcesAdvanceOnLowConfidence(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "Here are some draft requirements.\nCONFIDENCE: 0.4")

	resp, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "a todo app", Confirm: true})
	require.NoError(t, err)
	require.True(t, resp.PhaseAdvanced)
}

func TestManager_Advance_DevelopmentPhaseRunsDevloop(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "func Handler() {}\n")

	for i := 0; i < 4; i++ {
		resp, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "continue", Confirm: true})
		require.NoError(t, err)
		if resp.Phase == 4 {
			require.NotEmpty(t, resp.ArtifactRefs)
			return
		}
	}
	t.Fatal("never reached phase 4")
}

func TestManager_Regress_RewindsPhaseWithoutTouchingArtifacts(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "Here are the requirements.\nCONFIDENCE: 0.95")

	_, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "a todo app"})
	require.NoError(t, err)
	_, err = mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-1", UserTurn: "continue", Confirm: true})
	require.NoError(t, err)

	err = mgr.Regress(ctx, sessionID, 1)
	require.NoError(t, err)

	err = mgr.Regress(ctx, sessionID, 5)
	require.Error(t, err)
}

func TestManager_Advance_ForeignWorkspaceLooksAbsent(t *testing.T) {
	ctx := context.Background()
	mgr, sessionID := newTestManager(t, "Here are the requirements.\nCONFIDENCE: 0.95")

	_, err := mgr.Advance(ctx, models.AdvanceWorkflowRequest{SessionID: sessionID, WorkspaceID: "ws-2", UserTurn: "a todo app"})
	require.ErrorIs(t, err, workflow.ErrSessionNotFound)
}
