package context_test

import (
	stdcontext "context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	ctxsync "github.com/codeready-toolchain/builder/pkg/context"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/stretchr/testify/require"
)

type fakeSandboxProvider struct {
	files map[string]string
}

func newFakeSandboxProvider() *fakeSandboxProvider {
	return &fakeSandboxProvider{files: map[string]string{}}
}

func (p *fakeSandboxProvider) Create(ctx stdcontext.Context, opts sandbox.CreateOptions) (string, string, error) {
	return "sbx-1", "/workspace", nil
}

func (p *fakeSandboxProvider) Execute(ctx stdcontext.Context, externalID, command string, opts sandbox.ExecOptions) (*sandbox.ExecResult, error) {
	// The synchronizer renames its .tmp projections into place with mv.
	if fields := strings.Fields(command); len(fields) == 4 && fields[0] == "mv" && fields[1] == "-f" {
		p.files[fields[3]] = p.files[fields[2]]
		delete(p.files, fields[2])
	}
	return &sandbox.ExecResult{Stdout: "ok", ExitCode: 0}, nil
}

func (p *fakeSandboxProvider) WriteFile(ctx stdcontext.Context, externalID, path, content string) error {
	p.files[path] = content
	return nil
}

func (p *fakeSandboxProvider) ReadFile(ctx stdcontext.Context, externalID, path string) (string, error) {
	return p.files[path], nil
}

func (p *fakeSandboxProvider) List(ctx stdcontext.Context, externalID, dir string) ([]string, error) {
	return nil, nil
}

func (p *fakeSandboxProvider) PreviewURL(ctx stdcontext.Context, externalID string, port int) (string, error) {
	return "https://preview.example/8080", nil
}

func (p *fakeSandboxProvider) Terminate(ctx stdcontext.Context, externalID string) error {
	return nil
}

func (p *fakeSandboxProvider) Liveness(ctx stdcontext.Context, externalID string) (time.Duration, error) {
	return time.Millisecond, nil
}

// stubSession satisfies context.Session without touching the database,
// since the synchronizer only needs the session's tenant/phase/status.
type stubSession struct {
	workspaceID string
	phase       int
	status      string
}

func (s stubSession) Snapshot(ctx stdcontext.Context, sessionID string) (string, int, string, error) {
	return s.workspaceID, s.phase, s.status, nil
}

func TestSynchronizer_ToSandboxSkipsMissingUpstreamArtifacts(t *testing.T) {
	ctx := stdcontext.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-1").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	provider := newFakeSandboxProvider()
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-1", "ws-1", "node-20", nil)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	sync := ctxsync.NewSynchronizer(store, mgr, stubSession{workspaceID: "ws-1", phase: 1, status: "active"})

	require.NoError(t, sync.ToSandbox(ctx, "sess-1"))

	// No requirement artifact exists yet: requirements.json must not be
	// written, only the always-derived files.
	_, ok := provider.files[".pria/requirements.json"]
	require.False(t, ok)
	require.Contains(t, provider.files, ".pria/current-phase.json")
	require.Contains(t, provider.files, ".pria/artifacts.json")
	require.Contains(t, provider.files, ".pria/progress-tracking.json")

	var phase map[string]int
	require.NoError(t, json.Unmarshal([]byte(provider.files[".pria/current-phase.json"]), &phase))
	require.Equal(t, 1, phase["phase"])
}

func TestSynchronizer_ToSandboxProjectsUpstreamArtifact(t *testing.T) {
	ctx := stdcontext.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-2").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	provider := newFakeSandboxProvider()
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-2", "ws-1", "node-20", nil)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	_, err = store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  "ws-1",
		SessionID:    "sess-2",
		SourceAgent:  "requirements-analyst",
		ArtifactType: "requirement",
		ReferenceKey: "@requirements-analyst/requirement",
		Phase:        1,
		Payload:      map[string]interface{}{"summary": "track team expenses"},
	})
	require.NoError(t, err)

	sync := ctxsync.NewSynchronizer(store, mgr, stubSession{workspaceID: "ws-1", phase: 1, status: "active"})
	require.NoError(t, sync.ToSandbox(ctx, "sess-2"))

	require.Contains(t, provider.files, ".pria/requirements.json")
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(provider.files[".pria/requirements.json"]), &payload))
	require.Equal(t, "track team expenses", payload["summary"])
}

func TestSynchronizer_FromSandboxAbsorbsAndSyncRoundTrips(t *testing.T) {
	ctx := stdcontext.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-3").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	provider := newFakeSandboxProvider()
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-3", "ws-1", "node-20", nil)
	require.NoError(t, err)

	store := artifact.NewStore(client)
	sess := stubSession{workspaceID: "ws-1", phase: 2, status: "active"}
	sync := ctxsync.NewSynchronizer(store, mgr, sess)

	// External tooling in the sandbox writes tasks.json directly.
	provider.files[".pria/tasks.json"] = `{"tasks":["set up schema"]}`

	require.NoError(t, sync.FromSandbox(ctx, "sess-3"))

	got, err := store.Get(ctx, "ws-1", "sess-3", "@project-planner/plan")
	require.NoError(t, err)
	require.Equal(t, []interface{}{"set up schema"}, got.Payload["tasks"])

	// A file never written to the sandbox is tolerated, not an error.
	require.NoError(t, sync.FromSandbox(ctx, "sess-3"))
}
