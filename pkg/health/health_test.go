package health_test

import (
	"context"
	"testing"
	"time"

	"github.com/codeready-toolchain/builder/pkg/health"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/stretchr/testify/require"
)

type flakyProvider struct {
	fail bool
}

func (p *flakyProvider) Create(ctx context.Context, opts sandbox.CreateOptions) (string, string, error) {
	return "sbx-health-1", "/workspace", nil
}
func (p *flakyProvider) Execute(ctx context.Context, externalID, command string, opts sandbox.ExecOptions) (*sandbox.ExecResult, error) {
	if p.fail {
		return nil, context.DeadlineExceeded
	}
	return &sandbox.ExecResult{Stdout: "ok", ExitCode: 0}, nil
}
func (p *flakyProvider) WriteFile(ctx context.Context, externalID, path, content string) error {
	return nil
}
func (p *flakyProvider) ReadFile(ctx context.Context, externalID, path string) (string, error) {
	return "", nil
}
func (p *flakyProvider) List(ctx context.Context, externalID, dir string) ([]string, error) {
	return nil, nil
}
func (p *flakyProvider) PreviewURL(ctx context.Context, externalID string, port int) (string, error) {
	return "", nil
}
func (p *flakyProvider) Terminate(ctx context.Context, externalID string) error { return nil }
func (p *flakyProvider) Liveness(ctx context.Context, externalID string) (time.Duration, error) {
	if p.fail {
		return 0, context.DeadlineExceeded
	}
	return time.Millisecond, nil
}

func TestMonitor_MarksUnhealthyAfterThreeFailures(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-health-1").SetWorkspaceID("ws-1").SetInitialPrompt("build a todo app").
		Save(ctx)
	require.NoError(t, err)

	provider := &flakyProvider{}
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-health-1", "ws-1", "node-20", nil)
	require.NoError(t, err)

	rec := health.NewRecovery(client, mgr, provider)
	mon := health.NewMonitor(client, provider, rec, time.Hour)

	provider.fail = true
	mon.Poll(ctx)
	mon.Poll(ctx)
	mon.Poll(ctx)

	statuses := mon.Statuses()
	st, ok := statuses["sess-health-1"]
	require.True(t, ok)
	require.False(t, st.Healthy)
	require.GreaterOrEqual(t, st.ConsecutiveFailures, 3)
}

func TestRecovery_EscalatesAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-health-2").SetWorkspaceID("ws-1").SetInitialPrompt("build a blog").
		Save(ctx)
	require.NoError(t, err)

	provider := &flakyProvider{fail: true}
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-health-2", "ws-1", "node-20", nil)
	require.NoError(t, err)

	rec := health.NewRecovery(client, mgr, provider)

	for i := 0; i < health.MaxRecoveryAttemptsPerHour; i++ {
		_ = rec.Recover(ctx, "sess-health-2", health.FailureCommandFailure)
	}
	err = rec.Recover(ctx, "sess-health-2", health.FailureCommandFailure)
	require.Error(t, err)

	sess, err := client.Session.Get(ctx, "sess-health-2")
	require.NoError(t, err)
	require.Equal(t, "failed", string(sess.Status))
}

type fixedIDProvider struct {
	flakyProvider
	nextID string
}

func (p *fixedIDProvider) Create(ctx context.Context, opts sandbox.CreateOptions) (string, string, error) {
	return p.nextID, "/workspace-backup", nil
}

func TestRecovery_FailsOverOntoPreWarmedBackup(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	_, err := client.Session.Create().
		SetID("sess-health-3").SetWorkspaceID("ws-1").SetInitialPrompt("build a crm").
		Save(ctx)
	require.NoError(t, err)

	provider := &flakyProvider{fail: true}
	mgr := sandbox.NewManager(client, provider)
	_, err = mgr.Create(ctx, "sess-health-3", "ws-1", "node-20", nil)
	require.NoError(t, err)

	backupProvider := &fixedIDProvider{nextID: "sbx-health-backup"}
	pool := health.NewWarmPool(backupProvider, "node-20", 1)
	require.NoError(t, pool.TopUp(ctx))
	require.Equal(t, 1, pool.Len())

	rec := health.NewRecovery(client, mgr, provider).WithWarmPool(pool)

	// Attempts 0 and 1 try restart/recreate against a provider that keeps
	// failing; attempt 2 escalates to failover and claims the backup.
	for i := 0; i < health.MaxRecoveryAttemptsPerHour-1; i++ {
		_ = rec.Recover(ctx, "sess-health-3", health.FailureCommandFailure)
	}
	err = rec.Recover(ctx, "sess-health-3", health.FailureCommandFailure)
	require.NoError(t, err)
	require.Equal(t, 0, pool.Len())

	sess, err := client.Session.Get(ctx, "sess-health-3")
	require.NoError(t, err)
	require.NotNil(t, sess.SandboxID)
	require.Equal(t, "sbx-health-backup", *sess.SandboxID)
}
