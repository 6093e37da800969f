package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParallelTask holds the schema definition for a single subagent unit of
// work inside a ParallelBatch wave.
type ParallelTask struct {
	ent.Schema
}

// Fields of the ParallelTask.
func (ParallelTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("batch_id").
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Denormalized for cross-batch queries"),

		field.Int("wave_index").
			Default(0).
			Comment("Computed by the dependency graph builder; tasks in the same wave have all dependencies satisfied by earlier waves"),
		field.String("agent_name").
			Comment("Registry entry this task is bound to, e.g. 'code-generator'"),
		field.Text("prompt").
			Comment("Rendered instruction handed to the LLM executor"),
		field.JSON("context_refs", []string{}).
			Optional().
			Comment("Artifact reference keys to resolve into this task's context"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("task_id values that must succeed before this task is runnable"),
		field.String("artifact_type").
			Optional().
			Nillable().
			Comment("Artifact type this task's output is stored as on success, defaults to 'task'"),
		field.String("reference_key").
			Optional().
			Nillable().
			Comment("Reference key the resulting artifact is stored under; defaults to @agent_name/task_id"),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("medium"),
		field.Int("estimated_duration_ms").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "ready", "running", "succeeded", "failed", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0).
			Comment("Retry count, bounded by pkg/parallel's backoff policy"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("result_ref").
			Optional().
			Nillable().
			Comment("Artifact reference key produced on success"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the ParallelTask.
func (ParallelTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", ParallelBatch.Type).
			Ref("tasks").
			Field("batch_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ParallelTask.
func (ParallelTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "status"),
		index.Fields("session_id"),
	}
}
