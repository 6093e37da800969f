package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxEnv holds the schema definition for an ephemeral remote execution
// environment (the "Target App" runtime) provisioned for a session. See
// pkg/sandbox for the provider interface and pkg/health for the
// poll/recovery state machine driving the status transitions below.
type SandboxEnv struct {
	ent.Schema
}

// Fields of the SandboxEnv.
func (SandboxEnv) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sandbox_id").
			Unique().
			Immutable().
			Comment("External id assigned by the remote sandbox provider"),
		field.String("session_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),

		field.String("working_dir").
			Comment("Project root inside the sandbox filesystem"),
		field.String("preview_url").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("creating", "ready", "degraded", "unhealthy", "unresponsive", "terminated").
			Default("creating"),
		field.Int("consecutive_failures").
			Default(0),
		field.Int("recovery_attempts").
			Default(0).
			Comment("Capped at 3 per hour by pkg/health's recovery policy"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("terminated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the SandboxEnv.
func (SandboxEnv) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("sandbox_envs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SandboxEnv.
func (SandboxEnv) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("workspace_id", "status"),
	}
}
