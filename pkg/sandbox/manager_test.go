package sandbox_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	nextID     int
	terminated map[string]bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{terminated: map[string]bool{}}
}

func (p *fakeProvider) Create(ctx context.Context, opts sandbox.CreateOptions) (string, string, error) {
	p.nextID++
	return "sbx-1", "/workspace", nil
}

func (p *fakeProvider) Execute(ctx context.Context, externalID, command string, opts sandbox.ExecOptions) (*sandbox.ExecResult, error) {
	return &sandbox.ExecResult{Stdout: "ok", ExitCode: 0}, nil
}

func (p *fakeProvider) WriteFile(ctx context.Context, externalID, path, content string) error { return nil }
func (p *fakeProvider) ReadFile(ctx context.Context, externalID, path string) (string, error) {
	return "content", nil
}
func (p *fakeProvider) List(ctx context.Context, externalID, dir string) ([]string, error) {
	return []string{"main.go"}, nil
}
func (p *fakeProvider) PreviewURL(ctx context.Context, externalID string, port int) (string, error) {
	return "https://preview.example/8080", nil
}
func (p *fakeProvider) Terminate(ctx context.Context, externalID string) error {
	p.terminated[externalID] = true
	return nil
}
func (p *fakeProvider) Liveness(ctx context.Context, externalID string) (time.Duration, error) {
	return time.Millisecond, nil
}

func TestManager_CreateReusesReadySandbox(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-1").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	provider := newFakeProvider()
	mgr := sandbox.NewManager(client, provider)

	env1, err := mgr.Create(ctx, "sess-1", "ws-1", "node-20", nil)
	require.NoError(t, err)

	env2, err := mgr.Create(ctx, "sess-1", "ws-1", "node-20", nil)
	require.NoError(t, err)
	require.Equal(t, env1.ID, env2.ID)
	require.Equal(t, 1, provider.nextID)
}

func TestManager_ExecuteRejectsInvalidCommand(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	mgr := sandbox.NewManager(client, newFakeProvider())

	_, err := mgr.Execute(ctx, "sess-1", "ls; rm -rf /", sandbox.ExecOptions{})
	require.ErrorIs(t, err, sandbox.ErrInvalidCommand)
}

func TestManager_TerminateMarksTerminated(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-2").SetWorkspaceID("ws-1").SetInitialPrompt("build a blog").
		Save(ctx)
	require.NoError(t, err)

	provider := newFakeProvider()
	mgr := sandbox.NewManager(client, provider)

	_, err = mgr.Create(ctx, "sess-2", "ws-1", "node-20", nil)
	require.NoError(t, err)

	require.NoError(t, mgr.Terminate(ctx, "sess-2"))
	require.True(t, provider.terminated["sbx-1"])
}
