package models

import "github.com/codeready-toolchain/builder/ent"

// PutArtifactRequest contains fields for writing a new artifact version.
type PutArtifactRequest struct {
	WorkspaceID  string         `json:"workspace_id"`
	SessionID    string         `json:"session_id"`
	SourceAgent  string         `json:"source_agent"`
	ArtifactType string         `json:"artifact_type"`
	ReferenceKey string         `json:"reference_key"`
	Phase        int            `json:"phase"`
	Payload      map[string]any `json:"payload"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ArtifactRef identifies what to resolve: either a raw reference_key or an
// {agent, type} filter. Exactly one of ReferenceKey or (Agent or Type)
// should be set.
type ArtifactRef struct {
	ReferenceKey string `json:"reference_key,omitempty"`
	Agent        string `json:"agent,omitempty"`
	Type         string `json:"type,omitempty"`
}

// ResolvedContext is the deterministic textual projection of a set of
// artifact refs, grouped by agent, suitable for injection into an LLM
// prompt.
type ResolvedContext struct {
	ByAgent map[string][]*ent.Artifact `json:"by_agent"`
	Text    string                     `json:"text"`
}

// ArtifactStatistics summarizes a session's artifact store.
type ArtifactStatistics struct {
	ByAgent map[string]int `json:"by_agent"`
	ByType  map[string]int `json:"by_type"`
	ByPhase map[int]int    `json:"by_phase"`
	Total   int            `json:"total"`
	Recent  []*ent.Artifact `json:"recent"`
}
