// Package artifact implements the append-only artifact store: the
// single place subagent output is written and read back from, keyed by a
// stable, human-addressable reference_key within a session.
package artifact

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/artifact"
	"github.com/codeready-toolchain/builder/ent/session"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/google/uuid"
)

// Store is the artifact store backed by the ent/pgx client.
type Store struct {
	client *ent.Client
}

// NewStore creates a new Store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Put writes a new version of reference_key. If the key already has
// versions for this session, the new record is written with version =
// prev+1; the highest version wins on read. The write is performed inside
// a transaction so the version bump is free of races against concurrent
// writers of the same key.
func (s *Store) Put(ctx context.Context, req models.PutArtifactRequest) (string, error) {
	if req.WorkspaceID == "" || req.SessionID == "" || req.ReferenceKey == "" {
		return "", fmt.Errorf("%w: workspace_id, session_id and reference_key are required", ErrInvalidRef)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	prev, err := tx.Artifact.Query().
		Where(
			artifact.SessionID(req.SessionID),
			artifact.ReferenceKey(req.ReferenceKey),
		).
		Order(ent.Desc(artifact.FieldVersion)).
		First(ctx)
	version := 1
	if err == nil {
		version = prev.Version + 1
	} else if !ent.IsNotFound(err) {
		return "", fmt.Errorf("failed to query prior version: %w", err)
	}

	id := uuid.New().String()
	create := tx.Artifact.Create().
		SetID(id).
		SetSessionID(req.SessionID).
		SetWorkspaceID(req.WorkspaceID).
		SetSourceAgent(req.SourceAgent).
		SetArtifactType(artifact.ArtifactType(req.ArtifactType)).
		SetReferenceKey(req.ReferenceKey).
		SetVersion(version).
		SetPhase(req.Phase).
		SetPayload(req.Payload)
	if req.Metadata != nil {
		create = create.SetMetadata(req.Metadata)
	}
	_, err = create.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit artifact write: %w", err)
	}
	return id, nil
}

// Get returns the latest payload for reference_key, scoped to the tenant
// and session. Returns ErrNotFound if absent or owned by another tenant.
func (s *Store) Get(ctx context.Context, workspaceID, sessionID, referenceKey string) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().
		Where(
			artifact.WorkspaceID(workspaceID),
			artifact.SessionID(sessionID),
			artifact.ReferenceKey(referenceKey),
		).
		Order(ent.Desc(artifact.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return a, nil
}

// Resolve groups the latest version of each requested ref by source agent
// and renders a deterministic textual projection suitable for injection
// into an LLM prompt.
func (s *Store) Resolve(ctx context.Context, workspaceID, sessionID string, refs []models.ArtifactRef) (*models.ResolvedContext, error) {
	latest, err := s.latestPerKey(ctx, workspaceID, sessionID)
	if err != nil {
		return nil, err
	}

	seen := map[string]*ent.Artifact{}
	for _, ref := range refs {
		switch {
		case ref.ReferenceKey != "":
			if a, ok := latest[ref.ReferenceKey]; ok {
				seen[a.ReferenceKey] = a
			}
		case ref.Agent != "" || ref.Type != "":
			for _, a := range latest {
				if ref.Agent != "" && a.SourceAgent != ref.Agent {
					continue
				}
				if ref.Type != "" && string(a.ArtifactType) != ref.Type {
					continue
				}
				seen[a.ReferenceKey] = a
			}
		}
	}

	byAgent := map[string][]*ent.Artifact{}
	for _, a := range seen {
		byAgent[a.SourceAgent] = append(byAgent[a.SourceAgent], a)
	}
	agents := make([]string, 0, len(byAgent))
	for agent := range byAgent {
		agents = append(agents, agent)
	}
	sort.Strings(agents)

	var sb strings.Builder
	for _, agentName := range agents {
		artifacts := byAgent[agentName]
		sort.Slice(artifacts, func(i, j int) bool {
			return artifacts[i].ReferenceKey < artifacts[j].ReferenceKey
		})
		fmt.Fprintf(&sb, "## %s\n", agentName)
		for _, a := range artifacts {
			fmt.Fprintf(&sb, "### %s (v%d)\n%v\n\n", a.ReferenceKey, a.Version, a.Payload)
		}
	}

	return &models.ResolvedContext{ByAgent: byAgent, Text: sb.String()}, nil
}

// latestPerKey returns, for every reference_key in the session, only its
// highest version.
func (s *Store) latestPerKey(ctx context.Context, workspaceID, sessionID string) (map[string]*ent.Artifact, error) {
	all, err := s.client.Artifact.Query().
		Where(
			artifact.WorkspaceID(workspaceID),
			artifact.SessionID(sessionID),
		).
		Order(ent.Asc(artifact.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	latest := map[string]*ent.Artifact{}
	for _, a := range all {
		latest[a.ReferenceKey] = a
	}
	return latest, nil
}

// Statistics summarizes a session's artifact store. A session owned by
// another tenant (or no session at all) reports ErrNotFound rather than
// empty statistics, so a caller probing foreign session ids cannot tell
// the two apart.
func (s *Store) Statistics(ctx context.Context, workspaceID, sessionID string) (*models.ArtifactStatistics, error) {
	owned, err := s.client.Session.Query().
		Where(session.ID(sessionID), session.WorkspaceID(workspaceID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scope session: %w", err)
	}
	if !owned {
		return nil, ErrNotFound
	}

	latest, err := s.latestPerKey(ctx, workspaceID, sessionID)
	if err != nil {
		return nil, err
	}

	stats := &models.ArtifactStatistics{
		ByAgent: map[string]int{},
		ByType:  map[string]int{},
		ByPhase: map[int]int{},
	}
	ordered := make([]*ent.Artifact, 0, len(latest))
	for _, a := range latest {
		stats.ByAgent[a.SourceAgent]++
		stats.ByType[string(a.ArtifactType)]++
		stats.ByPhase[a.Phase]++
		ordered = append(ordered, a)
	}
	stats.Total = len(ordered)

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	if len(ordered) > 10 {
		ordered = ordered[:10]
	}
	stats.Recent = ordered

	return stats, nil
}
