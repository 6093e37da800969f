package models

import (
	"time"

	"github.com/codeready-toolchain/builder/ent"
)

// CreateSessionRequest contains fields for starting a new build session.
type CreateSessionRequest struct {
	WorkspaceID   string `json:"workspace_id"`
	InitialPrompt string `json:"initial_prompt"`
}

// SessionFilters contains filtering options for listing sessions.
type SessionFilters struct {
	WorkspaceID    string     `json:"workspace_id"`
	Status         string     `json:"status,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeArchived bool      `json:"include_archived,omitempty"`
}

// SessionResponse wraps a Session with optional loaded edges.
type SessionResponse struct {
	*ent.Session
}

// SessionListResponse contains a paginated session list.
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// AdvanceWorkflowRequest carries one user turn delivered to the
// workflow manager. WorkspaceID scopes the session load; a session id
// owned by another tenant is indistinguishable from an unknown one.
// Confirm requests an explicit phase transition even if the confidence
// threshold has not been reached.
type AdvanceWorkflowRequest struct {
	SessionID   string `json:"session_id"`
	WorkspaceID string `json:"workspace_id"`
	UserTurn    string `json:"user_turn"`
	Confirm     bool   `json:"confirm,omitempty"`
}

// AdvanceWorkflowResponse is the result of one workflow turn.
type AdvanceWorkflowResponse struct {
	SessionID      string   `json:"session_id"`
	Phase          int      `json:"phase"`
	Response       string   `json:"response"`
	ArtifactRefs   []string `json:"artifact_refs,omitempty"`
	PhaseAdvanced  bool     `json:"phase_advanced"`
	Confidence     float64  `json:"confidence,omitempty"`
}
