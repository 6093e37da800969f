package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeready-toolchain/builder/ent"
	"github.com/codeready-toolchain/builder/ent/session"
	"github.com/codeready-toolchain/builder/pkg/models"
)

// CreateSession starts a new build session at phase 1, bound to the
// catalog's phase-1 subagent.
func (m *Manager) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	create := m.client.Session.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetInitialPrompt(req.InitialPrompt)
	if desc, ok := m.primaryFor(1); ok {
		create = create.SetSubagentRole(desc.Name)
	}
	sess, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow: failed to create session: %w", err)
	}
	return sess, nil
}

// GetSession loads one session, scoped to its tenant.
func (m *Manager) GetSession(ctx context.Context, workspaceID, sessionID string) (*ent.Session, error) {
	sess, err := m.client.Session.Query().
		Where(session.ID(sessionID), session.WorkspaceID(workspaceID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow: failed to load session %s: %w", sessionID, err)
	}
	return sess, nil
}

// ListSessions lists a workspace's sessions, newest first, honoring the
// filters' status/pagination fields.
func (m *Manager) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	q := m.client.Session.Query().Where(session.WorkspaceID(filters.WorkspaceID))
	if filters.Status != "" {
		q = q.Where(session.StatusEQ(session.Status(filters.Status)))
	}
	if !filters.IncludeArchived {
		q = q.Where(session.ArchivedAtIsNil())
	}
	if filters.CreatedAfter != nil {
		q = q.Where(session.CreatedAtGT(*filters.CreatedAfter))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow: failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	sessions, err := q.Order(ent.Desc(session.FieldCreatedAt)).
		Limit(limit).Offset(filters.Offset).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow: failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// Cancel marks an active session failed, stopping any further Advance
// calls against it. It does not tear down the sandbox — callers that
// also want that should follow up with a sandbox.Manager.Terminate.
func (m *Manager) Cancel(ctx context.Context, workspaceID, sessionID string) error {
	sess, err := m.GetSession(ctx, workspaceID, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != session.StatusActive && sess.Status != session.StatusPaused {
		return ErrSessionNotActive
	}
	if err := m.client.Session.UpdateOneID(sessionID).
		SetStatus(session.StatusFailed).
		SetErrorMessage("cancelled by user").
		Exec(ctx); err != nil {
		return fmt.Errorf("workflow: failed to cancel session %s: %w", sessionID, err)
	}
	if m.publisher != nil {
		_ = m.publisher.PublishSessionStatus(ctx, sessionID, sess.CurrentPhase, string(session.StatusFailed))
	}
	return nil
}
