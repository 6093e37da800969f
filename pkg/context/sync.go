// Package context implements the context synchronizer: the
// bidirectional bridge between the artifact store and a session's
// sandbox filesystem. It projects the artifact store's current state
// into a well-known ".pria/" directory inside the sandbox so external
// tooling running there can read requirements, specs, and task state,
// and it absorbs whatever that tooling leaves in ".pria/" back into the
// artifact store.
package context

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/builder/pkg/artifact"
	"github.com/codeready-toolchain/builder/pkg/models"
	"github.com/codeready-toolchain/builder/pkg/sandbox"
)

// Dir is the sandbox-relative directory the synchronizer reads and
// writes.
const Dir = ".pria"

// artifactProjection names one of the upstream-authored files under Dir
// and the artifact reference key it is projected from or absorbed into.
type artifactProjection struct {
	file         string
	referenceKey string
	artifactType string
}

// upstream are the files backed by another subagent's artifact: a
// straight mirror of the latest version under a fixed, predictable
// reference key (see pkg/workflow's single-agent phase naming).
var upstream = []artifactProjection{
	{file: "requirements.json", referenceKey: "@requirements-analyst/requirement", artifactType: "requirement"},
	{file: "technical-specs.json", referenceKey: "@system-architect/architecture", artifactType: "architecture"},
	{file: "tasks.json", referenceKey: "@project-planner/plan", artifactType: "plan"},
}

// currentPhaseFile and the two computed summary files are derived from
// live session/store state on every ToSandbox call rather than mirrored
// from a single artifact, so they never go stale behind an absorbed copy
// of themselves.
const (
	currentPhaseFile      = "current-phase.json"
	artifactsFile         = "artifacts.json"
	progressTrackingFile  = "progress-tracking.json"
	artifactsRefKey       = "@context-sync/artifacts"
	progressTrackingRefKey = "@context-sync/progress"
)

// Session is the minimal session accessor the synchronizer needs;
// satisfied by a thin wrapper over *ent.Client in production and a stub
// in tests.
type Session interface {
	Snapshot(ctx context.Context, sessionID string) (workspaceID string, phase int, status string, err error)
}

// Synchronizer bridges the artifact store and a session's sandbox.
type Synchronizer struct {
	store   *artifact.Store
	sandbox *sandbox.Manager
	session Session
}

// NewSynchronizer creates a Synchronizer.
func NewSynchronizer(store *artifact.Store, sandboxMgr *sandbox.Manager, sessions Session) *Synchronizer {
	return &Synchronizer{store: store, sandbox: sandboxMgr, session: sessions}
}

// ToSandbox projects the artifact store's current state into the
// session's sandbox. An upstream file whose artifact doesn't exist yet
// is skipped, not zeroed out: a phase 2 session with no plan yet simply
// never gets tasks.json written, rather than getting one with empty
// content, so a partially synced session never looks regressed to the
// external tool reading it. Existing files are always overwritten in
// place; nothing under Dir is ever deleted.
func (s *Synchronizer) ToSandbox(ctx context.Context, sessionID string) error {
	workspaceID, phase, status, err := s.session.Snapshot(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("context: failed to load session %s: %w", sessionID, err)
	}

	if err := s.writeJSON(ctx, sessionID, currentPhaseFile, map[string]int{"phase": phase}); err != nil {
		return err
	}

	for _, p := range upstream {
		a, err := s.store.Get(ctx, workspaceID, sessionID, p.referenceKey)
		if err != nil {
			if err == artifact.ErrNotFound {
				continue
			}
			return fmt.Errorf("context: failed to resolve %s: %w", p.referenceKey, err)
		}
		if err := s.writeJSON(ctx, sessionID, p.file, a.Payload); err != nil {
			return err
		}
	}

	stats, err := s.store.Statistics(ctx, workspaceID, sessionID)
	if err != nil {
		return fmt.Errorf("context: failed to summarize artifacts: %w", err)
	}
	if err := s.writeJSON(ctx, sessionID, artifactsFile, stats); err != nil {
		return err
	}
	if err := s.writeJSON(ctx, sessionID, progressTrackingFile, map[string]interface{}{
		"phase":  phase,
		"status": status,
	}); err != nil {
		return err
	}
	return nil
}

// writeJSON overwrites Dir/name atomically: the content lands in a
// sibling .tmp file first and is renamed into place, so a reader inside
// the sandbox never observes a half-written projection.
func (s *Synchronizer) writeJSON(ctx context.Context, sessionID, name string, v interface{}) error {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("context: failed to marshal %s: %w", name, err)
	}
	tmp := Dir + "/" + name + ".tmp"
	if err := s.sandbox.WriteFile(ctx, sessionID, tmp, string(content)); err != nil {
		return fmt.Errorf("context: failed to write %s: %w", tmp, err)
	}
	if _, err := s.sandbox.Execute(ctx, sessionID, fmt.Sprintf("mv -f %s %s/%s", tmp, Dir, name), sandbox.ExecOptions{}); err != nil {
		return fmt.Errorf("context: failed to rename %s into place: %w", tmp, err)
	}
	return nil
}

// FromSandbox reads whatever the upstream-authored files and the two
// computed summaries currently hold in the sandbox and upserts each into
// the artifact store with source agent "context-sync", bumping the
// version on each call. Upstream files keep their own reference keys;
// only the two summaries use context-sync-owned keys. A file absent from the sandbox (never
// written, or never modified by any external tool) is silently
// skipped.
func (s *Synchronizer) FromSandbox(ctx context.Context, sessionID string) error {
	workspaceID, phase, _, err := s.session.Snapshot(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("context: failed to load session %s: %w", sessionID, err)
	}

	for _, p := range upstream {
		if err := s.absorb(ctx, workspaceID, sessionID, phase, p.file, p.referenceKey, "context-sync", p.artifactType); err != nil {
			return err
		}
	}
	if err := s.absorb(ctx, workspaceID, sessionID, phase, artifactsFile, artifactsRefKey, "context-sync", "artifact_index"); err != nil {
		return err
	}
	if err := s.absorb(ctx, workspaceID, sessionID, phase, progressTrackingFile, progressTrackingRefKey, "context-sync", "artifact_index"); err != nil {
		return err
	}
	return nil
}

func (s *Synchronizer) absorb(ctx context.Context, workspaceID, sessionID string, phase int, file, referenceKey, sourceAgent, artifactType string) error {
	raw, err := s.sandbox.ReadFile(ctx, sessionID, Dir+"/"+file)
	if err != nil || raw == "" {
		return nil
	}
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return fmt.Errorf("context: failed to parse %s/%s: %w", Dir, file, err)
	}
	if _, err := s.store.Put(ctx, models.PutArtifactRequest{
		WorkspaceID:  workspaceID,
		SessionID:    sessionID,
		SourceAgent:  sourceAgent,
		ArtifactType: artifactType,
		ReferenceKey: referenceKey,
		Phase:        phase,
		Payload:      payload,
	}); err != nil {
		return fmt.Errorf("context: failed to absorb %s/%s: %w", Dir, file, err)
	}
	return nil
}
