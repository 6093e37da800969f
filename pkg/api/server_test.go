package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/pkg/api"
	"github.com/codeready-toolchain/builder/pkg/artifact"
	pkgcontext "github.com/codeready-toolchain/builder/pkg/context"
	"github.com/codeready-toolchain/builder/pkg/database"
	"github.com/codeready-toolchain/builder/pkg/devloop"
	"github.com/codeready-toolchain/builder/pkg/events"
	"github.com/codeready-toolchain/builder/pkg/health"
	"github.com/codeready-toolchain/builder/pkg/llmexec"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/parallel"
	"github.com/codeready-toolchain/builder/pkg/registry"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/pkg/workflow"
	"github.com/codeready-toolchain/builder/test/util"
)

// fakeSandboxProvider is a no-op sandbox.Provider for tests that never
// exercise a real remote execution environment.
type fakeSandboxProvider struct{}

func (fakeSandboxProvider) Create(ctx context.Context, opts sandbox.CreateOptions) (string, string, error) {
	return "sbx-test", "/workspace", nil
}
func (fakeSandboxProvider) Execute(ctx context.Context, externalID, command string, opts sandbox.ExecOptions) (*sandbox.ExecResult, error) {
	return &sandbox.ExecResult{Stdout: "ok", ExitCode: 0}, nil
}
func (fakeSandboxProvider) WriteFile(ctx context.Context, externalID, path, content string) error {
	return nil
}
func (fakeSandboxProvider) ReadFile(ctx context.Context, externalID, path string) (string, error) {
	return "", nil
}
func (fakeSandboxProvider) List(ctx context.Context, externalID, dir string) ([]string, error) {
	return nil, nil
}
func (fakeSandboxProvider) PreviewURL(ctx context.Context, externalID string, port int) (string, error) {
	return "https://preview.example/" + externalID, nil
}
func (fakeSandboxProvider) Terminate(ctx context.Context, externalID string) error { return nil }
func (fakeSandboxProvider) Liveness(ctx context.Context, externalID string) (time.Duration, error) {
	return time.Millisecond, nil
}

// fakeLLMProvider returns a single text chunk, enough to exercise the
// parallel processor's task execution path without a real model.
type fakeLLMProvider struct{}

func (fakeLLMProvider) Stream(ctx context.Context, req llmexec.Request) (<-chan llmexec.Chunk, error) {
	ch := make(chan llmexec.Chunk, 1)
	ch <- llmexec.Chunk{Type: llmexec.ChunkText, Text: "done"}
	close(ch)
	return ch, nil
}

// newTestServer wires a real Server against a real test database and
// fakes for the two external systems (sandbox, LLM), mirroring
// cmd/builder's composition order at test scale.
func newTestServer(t *testing.T) (*api.Server, *ent.Client) {
	t.Helper()
	entClient, sqlDB := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(entClient, sqlDB)

	reg := registry.Default()
	store := artifact.NewStore(dbClient.Client)
	publisher := events.NewEventPublisher(dbClient.DB())

	sandboxMgr := sandbox.NewManager(dbClient.Client, fakeSandboxProvider{})
	sessions := pkgcontext.NewEntSession(dbClient.Client)
	synchronizer := pkgcontext.NewSynchronizer(store, sandboxMgr, sessions)
	recovery := health.NewRecovery(dbClient.Client, sandboxMgr, fakeSandboxProvider{})
	monitor := health.NewMonitor(dbClient.Client, fakeSandboxProvider{}, recovery, time.Minute)

	executor := llmexec.NewExecutor(fakeLLMProvider{}, store)
	processor := parallel.NewProcessor(dbClient.Client, store, executor, publisher)
	devManager := devloop.NewManager(dbClient.Client, store, executor, publisher)
	workflowMgr := workflow.NewManager(dbClient.Client, store, reg, executor, processor, devManager, publisher)

	srv := api.New("", api.Deps{
		Workflow:  workflowMgr,
		LLM:       executor,
		Sync:      synchronizer,
		Sandbox:   sandboxMgr,
		Parallel:  processor,
		Monitor:   monitor,
		Recovery:  recovery,
		Artifacts: store,
	})
	return srv, entClient
}

// createSession inserts a minimal Session row, required by ParallelBatch's
// FK-backed edge before any batch can reference sessionID.
func createSession(t *testing.T, client *ent.Client, sessionID, workspaceID string) {
	t.Helper()
	_, err := client.Session.Create().
		SetID(sessionID).
		SetWorkspaceID(workspaceID).
		SetInitialPrompt("build a todo app").
		Save(context.Background())
	require.NoError(t, err)
}

func doJSON(t *testing.T, srv *api.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestHandleArtifacts_PutGetResolve(t *testing.T) {
	srv, client := newTestServer(t)
	sessionID := "sess-api-1"
	createSession(t, client, sessionID, "ws-1")

	putReq := map[string]any{
		"action":        "put",
		"workspace_id":  "ws-1",
		"source_agent":  "system-architect",
		"artifact_type": "architecture",
		"reference_key": "@system-architect/api-spec",
		"phase":         2,
		"payload":       map[string]any{"version": "v1"},
	}
	rec := doJSON(t, srv, http.MethodPost, "/artifacts/"+sessionID, putReq)
	require.Equal(t, http.StatusCreated, rec.Code)

	getRec := doJSON(t, srv, http.MethodGet,
		"/artifacts/"+sessionID+"?workspace_id=ws-1&action=get&reference_key=@system-architect/api-spec", nil)
	require.Equal(t, http.StatusOK, getRec.Code)

	listRec := doJSON(t, srv, http.MethodGet, "/artifacts/"+sessionID+"?workspace_id=ws-1&action=list", nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var stats models.ArtifactStatistics
	decodeBody(t, listRec, &stats)
	require.Equal(t, 1, stats.Total)

	resolveReq := map[string]any{
		"action":       "resolve",
		"workspace_id": "ws-1",
		"refs":         []map[string]string{{"reference_key": "@system-architect/api-spec"}},
	}
	resolveRec := doJSON(t, srv, http.MethodPost, "/artifacts/"+sessionID, resolveReq)
	require.Equal(t, http.StatusOK, resolveRec.Code)
}

func TestHandleArtifactsGet_UnknownAction(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/artifacts/sess-1?workspace_id=ws-1&action=bogus", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParallel_CreateAndExecuteThenStatus(t *testing.T) {
	srv, client := newTestServer(t)
	createSession(t, client, "sess-api-2", "ws-1")

	createReq := map[string]any{
		"action":       "create_and_execute",
		"session_id":   "sess-api-2",
		"workspace_id": "ws-1",
		"phase":        4,
		"tasks": []map[string]any{
			{"local_id": "t1", "agent_name": "code-generator", "prompt": "write main.go", "artifact_type": "code"},
		},
	}
	rec := doJSON(t, srv, http.MethodPost, "/parallel", createReq)
	require.Equal(t, http.StatusCreated, rec.Code)

	var batch models.BatchResponse
	decodeBody(t, rec, &batch)
	require.NotEmpty(t, batch.ID)

	// Give the background wave executor a moment to run against the fake
	// LLM provider before checking status.
	require.Eventually(t, func() bool {
		statusRec := doJSON(t, srv, http.MethodGet, "/parallel?action=status&batchId="+batch.ID, nil)
		return statusRec.Code == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	depsRec := doJSON(t, srv, http.MethodGet, "/dependencies/sess-api-2?batchId="+batch.ID+"&action=analysis", nil)
	require.Equal(t, http.StatusOK, depsRec.Code)

	cpRec := doJSON(t, srv, http.MethodGet, "/dependencies/sess-api-2?batchId="+batch.ID+"&action=critical_path", nil)
	require.Equal(t, http.StatusOK, cpRec.Code)
}

func TestHandleParallelAction_MissingFields(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/parallel", map[string]any{"action": "create_and_execute"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDependencies_MissingBatchID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/dependencies/sess-1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorRecovery_RegisterSandboxNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/error-recovery", map[string]any{
		"action":     "register_sandbox",
		"session_id": "no-such-session",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleErrorRecovery_UnknownAction(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/error-recovery", map[string]any{"action": "bogus"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorRecovery_ForceRecoveryAll(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/error-recovery", map[string]any{"action": "force_recovery_all"})
	require.Equal(t, http.StatusAccepted, rec.Code)
}
