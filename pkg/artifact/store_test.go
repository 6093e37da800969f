package artifact_test

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/test/util"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, sessionID, workspaceID string) *artifact.Store {
	client, _ := util.SetupTestDatabase(t)
	_, err := client.Session.Create().
		SetID(sessionID).SetWorkspaceID(workspaceID).SetInitialPrompt("build a todo app").
		Save(context.Background())
	require.NoError(t, err)
	return artifact.NewStore(client)
}

func TestStore_PutGet_VersionsShadow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "sess-1", "ws-1")

	req := models.PutArtifactRequest{
		WorkspaceID:  "ws-1",
		SessionID:    "sess-1",
		SourceAgent:  "system-architect",
		ArtifactType: "architecture",
		ReferenceKey: "@system-architect/api-spec",
		Phase:        2,
		Payload:      map[string]any{"version": "v1"},
	}
	_, err := s.Put(ctx, req)
	require.NoError(t, err)

	req.Payload = map[string]any{"version": "v2"}
	_, err = s.Put(ctx, req)
	require.NoError(t, err)

	got, err := s.Get(ctx, "ws-1", "sess-1", "@system-architect/api-spec")
	require.NoError(t, err)
	require.Equal(t, 2, got.Version)
	require.Equal(t, "v2", got.Payload["version"])
}

func TestStore_Get_NotFoundAcrossTenants(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "sess-1", "ws-1")

	_, err := s.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  "ws-1",
		SessionID:    "sess-1",
		SourceAgent:  "requirements-analyst",
		ArtifactType: "requirement",
		ReferenceKey: "@requirements-analyst/spec",
		Phase:        1,
		Payload:      map[string]any{"ok": true},
	})
	require.NoError(t, err)

	_, err = s.Get(ctx, "ws-2", "sess-1", "@requirements-analyst/spec")
	require.ErrorIs(t, err, artifact.ErrNotFound)
}

func TestStore_Resolve_GroupsByAgentDeterministically(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "sess-1", "ws-1")

	_, err := s.Put(ctx, models.PutArtifactRequest{
		WorkspaceID: "ws-1", SessionID: "sess-1", SourceAgent: "system-architect",
		ArtifactType: "architecture", ReferenceKey: "@system-architect/api-spec",
		Phase: 2, Payload: map[string]any{"a": 1},
	})
	require.NoError(t, err)
	_, err = s.Put(ctx, models.PutArtifactRequest{
		WorkspaceID: "ws-1", SessionID: "sess-1", SourceAgent: "requirements-analyst",
		ArtifactType: "requirement", ReferenceKey: "@requirements-analyst/spec",
		Phase: 1, Payload: map[string]any{"b": 2},
	})
	require.NoError(t, err)

	resolved, err := s.Resolve(ctx, "ws-1", "sess-1", []models.ArtifactRef{
		{ReferenceKey: "@system-architect/api-spec"},
		{Agent: "requirements-analyst"},
	})
	require.NoError(t, err)
	require.Len(t, resolved.ByAgent, 2)
	require.Contains(t, resolved.Text, "system-architect")
	require.Contains(t, resolved.Text, "requirements-analyst")
}

func TestStore_Statistics(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "sess-1", "ws-1")

	for i := 0; i < 3; i++ {
		_, err := s.Put(ctx, models.PutArtifactRequest{
			WorkspaceID: "ws-1", SessionID: "sess-1", SourceAgent: "code-generator",
			ArtifactType: "code", ReferenceKey: "@code-generator/file" + string(rune('a'+i)),
			Phase: 4, Payload: map[string]any{"n": i},
		})
		require.NoError(t, err)
	}

	stats, err := s.Statistics(ctx, "ws-1", "sess-1")
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 3, stats.ByAgent["code-generator"])
	require.Equal(t, 3, stats.ByType["code"])
}

func TestStore_Statistics_ForeignTenantLooksAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "sess-1", "ws-1")

	_, err := s.Statistics(ctx, "ws-2", "sess-1")
	require.ErrorIs(t, err, artifact.ErrNotFound)
}
