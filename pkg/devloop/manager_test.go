package devloop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/builder/ent/developmentiteration"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/devloop"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/test/util"
)

type scriptedProvider struct {
	responses []string
	calls     int
}

func (p *scriptedProvider) Stream(ctx context.Context, req llmexec.Request) (<-chan llmexec.Chunk, error) {
	text := p.responses[p.calls]
	if p.calls < len(p.responses)-1 {
		p.calls++
	}
	ch := make(chan llmexec.Chunk, 2)
	ch <- llmexec.Chunk{Type: llmexec.ChunkText, Text: text}
	ch <- llmexec.Chunk{Type: llmexec.ChunkUsage, InputTokens: 10, OutputTokens: 10}
	close(ch)
	return ch, nil
}

func TestManager_Run_CompletesOnCleanOutput(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-dev-1").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	provider := &scriptedProvider{responses: []string{"func Handler() {}\n"}}
	llm := llmexec.NewExecutor(provider, store)
	mgr := devloop.NewManager(client, store, llm, nil)

	iter, err := mgr.Run(ctx, devloop.RunRequest{
		WorkspaceID:     "ws-1",
		SessionID:       "sess-dev-1",
		TaskID:          "task-1",
		AgentName:       "code-generator",
		Prompt:          "generate the handler",
		FilePath:        "code-generator/task-1.go",
		SchemaValidated: true,
		MaxIterations:   5,
	})
	require.NoError(t, err)
	require.Equal(t, developmentiteration.StatusCompleted, iter.Status)
	require.Equal(t, 1, iter.IterationNumber)
}

func TestManager_Run_BlocksOnCriticalIssue(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-dev-2").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	provider := &scriptedProvider{responses: []string{`apiKey := "sk-abcdefghijklmnopqrst"`}}
	llm := llmexec.NewExecutor(provider, store)
	mgr := devloop.NewManager(client, store, llm, nil)

	iter, err := mgr.Run(ctx, devloop.RunRequest{
		WorkspaceID:     "ws-1",
		SessionID:       "sess-dev-2",
		TaskID:          "task-2",
		AgentName:       "code-generator",
		Prompt:          "generate the config loader",
		FilePath:        "code-generator/task-2.go",
		SchemaValidated: true,
		MaxIterations:   5,
	})
	require.NoError(t, err)
	require.Equal(t, developmentiteration.StatusFailed, iter.Status)
	require.Equal(t, 1, iter.IterationNumber)
	require.NotEmpty(t, iter.Feedback)
}

func TestManager_Run_NonSchemaValidatedRunsToMaxIterations(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-dev-3").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	provider := &scriptedProvider{responses: []string{"func Handler() {}\n"}}
	llm := llmexec.NewExecutor(provider, store)
	mgr := devloop.NewManager(client, store, llm, nil)

	iter, err := mgr.Run(ctx, devloop.RunRequest{
		WorkspaceID:     "ws-1",
		SessionID:       "sess-dev-3",
		TaskID:          "task-3",
		AgentName:       "component-researcher",
		Prompt:          "research this component",
		FilePath:        "component-researcher/task-3.go",
		SchemaValidated: false,
		MaxIterations:   2,
	})
	require.NoError(t, err)
	require.Equal(t, 2, iter.IterationNumber)
}
