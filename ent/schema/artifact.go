package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for a single versioned unit of
// output produced by one subagent and consumed by others. Artifacts are
// append-only: a new version is inserted under the same reference_key,
// never mutated, so any prior phase can be replayed from the store (see
// pkg/artifact).
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),

		field.String("source_agent").
			Immutable().
			Comment("Subagent name that produced this version"),
		field.Enum("artifact_type").
			Values("requirement", "architecture", "plan", "task", "code", "test", "review", "compliance", "artifact_index").
			Immutable(),
		field.String("reference_key").
			Immutable().
			Comment("Stable human-addressable name, e.g. '@system-architect/api-spec'"),
		field.Int("version").
			Immutable().
			Comment("Monotonically increasing per reference_key within a session; highest wins on read"),
		field.Int("phase").
			Immutable().
			Comment("Workflow phase this artifact was produced in"),

		field.JSON("payload", map[string]interface{}{}).
			Comment("Typed blob; shape depends on artifact_type"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("artifacts").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "reference_key", "version").
			Unique(),
		index.Fields("workspace_id"),
		index.Fields("session_id", "source_agent"),
		index.Fields("session_id", "artifact_type"),
	}
}
