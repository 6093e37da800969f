package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DevelopmentIteration holds the schema definition for a single turn of
// phase 4's inner loop: generate, check compliance, gate, refine. See
// pkg/devloop.
type DevelopmentIteration struct {
	ent.Schema
}

// Fields of the DevelopmentIteration.
func (DevelopmentIteration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("iteration_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("task_id").
			Immutable().
			Comment("ParallelTask this iteration is refining"),

		field.Int("iteration_number").
			Comment("1-based position within the task's dev loop"),
		field.JSON("files_changed", []string{}).
			Optional(),

		field.JSON("compliance_report", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of the pkg/compliance.Report for this iteration"),
		field.JSON("feedback", []string{}).
			Optional().
			Comment("Human-readable feedback items fed into the next LLM turn"),

		field.Enum("status").
			Values("in_progress", "completed", "failed").
			Default("in_progress"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the DevelopmentIteration.
func (DevelopmentIteration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("iterations").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DevelopmentIteration.
func (DevelopmentIteration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "iteration_number").
			Unique(),
		index.Fields("workspace_id"),
	}
}
