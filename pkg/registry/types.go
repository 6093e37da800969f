// Package registry implements the subagent registry: a declarative,
// immutable-at-runtime catalog of phase-bound specialized agents loaded
// from a YAML catalog file. Entries are sorted by name and returned as
// defensive copies, with a by-phase index alongside name lookup.
package registry

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Capability names a tool-shaped action a subagent may invoke. The concrete
// shape of each capability (input schema, description) is declared with
// mcp.Tool so the sandbox's dev-tool surface and this catalog share one
// vocabulary. The descriptors themselves live in the capabilityTools
// table; New derives each subagent's AllowedTools from its declared
// capability names.
type Capability = mcp.Tool

// SubagentDescriptor is the static, immutable-at-runtime definition of one
// phase-bound specialized agent.
type SubagentDescriptor struct {
	// Name is the unique identifier used in ParallelTask.AgentName and in
	// @agent/name artifact reference keys.
	Name string `yaml:"name"`
	// Phase this descriptor is bound to, 1..7.
	Phase int `yaml:"phase"`
	// Capabilities this subagent may exercise, e.g. "file_write", "search",
	// "artifact_reference", "api_test".
	Capabilities []string `yaml:"capabilities"`
	// AllowedTools are the tool-shaped capabilities available to this
	// subagent, described in MCP tool-definition shape. Derived by New
	// from Capabilities via the capabilityTools table, never set from
	// YAML directly.
	AllowedTools []Capability `yaml:"-"`
	// ProducedArtifactTypes restricts which artifact_type values this
	// subagent's output may be stored as.
	ProducedArtifactTypes []string `yaml:"produced_artifact_types"`
	// PromptTemplateID names the opaque prompt template asset used to
	// render this subagent's system prompt; template contents are never
	// part of this catalog.
	PromptTemplateID string `yaml:"prompt_template_id"`
	// Description is a short human-readable summary, surfaced in tooling
	// and logs.
	Description string `yaml:"description"`
	// SchemaValidatedOutput marks subagents whose output is machine
	// checkable (e.g. a file tree a compliance scanner can analyze):
	// these terminate the development loop on first passing compliance
	// check. Subagents without a checkable output shape instead terminate
	// on the configured max-iterations cap.
	SchemaValidatedOutput bool `yaml:"schema_validated_output"`
	// MaxIterations bounds the inner development loop for
	// non-schema-validated subagents.
	MaxIterations int `yaml:"max_iterations"`
}

func (d SubagentDescriptor) clone() SubagentDescriptor {
	c := d
	if len(d.Capabilities) > 0 {
		c.Capabilities = append([]string(nil), d.Capabilities...)
	}
	if len(d.AllowedTools) > 0 {
		c.AllowedTools = append([]Capability(nil), d.AllowedTools...)
	}
	if len(d.ProducedArtifactTypes) > 0 {
		c.ProducedArtifactTypes = append([]string(nil), d.ProducedArtifactTypes...)
	}
	return c
}

// HasCapability reports whether the descriptor declares the named
// capability.
func (d SubagentDescriptor) HasCapability(name string) bool {
	for _, c := range d.Capabilities {
		if c == name {
			return true
		}
	}
	return false
}

// ProducesType reports whether the descriptor is allowed to produce the
// given artifact type.
func (d SubagentDescriptor) ProducesType(artifactType string) bool {
	for _, t := range d.ProducedArtifactTypes {
		if t == artifactType {
			return true
		}
	}
	return false
}
