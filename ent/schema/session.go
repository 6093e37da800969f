package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for a build session: one user's
// end-to-end attempt at turning a prompt into a working application.
// A session drives at most one sandbox and at most one in-flight LLM
// stream at a time (see pkg/llmexec and pkg/sandbox for the mutual
// exclusion invariants).
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable().
			Comment("Tenant isolation boundary, every read/write is filtered by this"),
		field.Text("initial_prompt").
			Comment("Original natural-language product idea submitted by the user"),
		field.Int("current_phase").
			Default(1).
			Comment("1..7, see pkg/workflow phase table"),
		field.String("subagent_role").
			Optional().
			Nillable().
			Comment("Subagent currently bound to the session's active phase"),
		field.String("sandbox_id").
			Optional().
			Nillable().
			Comment("External sandbox id, set once the sandbox manager provisions one"),
		field.Enum("status").
			Values("active", "paused", "completed", "failed").
			Default("active"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("For stall/orphan detection"),
		field.Time("archived_at").
			Optional().
			Nillable().
			Comment("Soft delete; sessions are retained until explicit archival"),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("batches", ParallelBatch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sandbox_envs", SandboxEnv.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("iterations", DevelopmentIteration.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id"),
		index.Fields("workspace_id", "status"),
		index.Fields("workspace_id", "last_activity"),
		index.Fields("archived_at").
			Annotations(entsql.IndexWhere("archived_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
