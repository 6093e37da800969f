package models

import "github.com/codeready-toolchain/builder/ent"

// CreateBatchRequest contains fields for creating a new parallel batch.
type CreateBatchRequest struct {
	SessionID   string                  `json:"session_id"`
	WorkspaceID string                  `json:"workspace_id"`
	Phase       int                     `json:"phase"`
	Tasks       []CreateTaskRequest     `json:"tasks"`
}

// CreateTaskRequest contains fields for one task within a batch. LocalID
// and Dependencies are request-scoped identifiers: the batch has not been
// persisted yet, so dependencies are expressed against LocalID (defaulting
// to the task's index in Tasks[] when left blank) rather than a stored
// task_id.
type CreateTaskRequest struct {
	LocalID             string   `json:"local_id,omitempty"`
	AgentName           string   `json:"agent_name"`
	Prompt              string   `json:"prompt"`
	ArtifactType        string   `json:"artifact_type"`
	ReferenceKey        string   `json:"reference_key,omitempty"`
	ContextRefs         []string `json:"context_refs,omitempty"`
	Dependencies        []string `json:"dependencies,omitempty"`
	Priority            string   `json:"priority,omitempty"`
	EstimatedDurationMs int      `json:"estimated_duration_ms,omitempty"`
}

// BatchProgress is emitted after each task transition within a batch.
type BatchProgress struct {
	BatchID    string   `json:"batch_id"`
	Completed  int      `json:"completed"`
	Total      int      `json:"total"`
	Percentage float64  `json:"percentage"`
	InFlight   []string `json:"in_flight"`
}

// BatchResponse wraps a ParallelBatch with its tasks.
type BatchResponse struct {
	*ent.ParallelBatch
	Tasks []*ent.ParallelTask `json:"tasks,omitempty"`
}
