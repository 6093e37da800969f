package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParallelBatch holds the schema definition for one dependency-graph batch
// of tasks, executed wave by wave, dispatched by the parallel processor
// within a single workflow phase.
type ParallelBatch struct {
	ent.Schema
}

// Fields of the ParallelBatch.
func (ParallelBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("batch_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),

		field.Int("phase").
			Comment("Workflow phase this batch was dispatched from"),

		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.JSON("results", map[string]string{}).
			Optional().
			Comment("task_id -> artifact reference key, populated as tasks succeed"),
		field.JSON("errors", map[string]string{}).
			Optional().
			Comment("task_id -> error message, populated as tasks fail"),
	}
}

// Edges of the ParallelBatch.
func (ParallelBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("batches").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tasks", ParallelTask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ParallelBatch.
func (ParallelBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status").
			Annotations(entsql.IndexWhere("status IN ('pending', 'running')")),
		index.Fields("workspace_id", "status"),
	}
}
