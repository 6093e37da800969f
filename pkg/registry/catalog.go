package registry

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// catalogFile mirrors the on-disk YAML shape for the subagent catalog:
// read, expand env vars, unmarshal.
type catalogFile struct {
	Subagents []SubagentDescriptor `yaml:"subagents"`
}

// envVarPattern matches ${VAR} and ${VAR:-default} references.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// expandEnv expands ${VAR} and ${VAR:-default} references in raw YAML
// bytes before parsing, honoring a shell-style default fallback in
// addition to bare os.ExpandEnv semantics.
func expandEnv(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		groups := envVarPattern.FindSubmatch(match)
		name := string(groups[1])
		def := string(groups[3])
		if v, ok := os.LookupEnv(name); ok {
			return []byte(v)
		}
		return []byte(def)
	})
}

// LoadCatalog reads a subagent catalog from a YAML file at path, expands
// environment variables, and builds a Registry from it.
func LoadCatalog(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: failed to read catalog %s: %w", path, err)
	}
	raw = expandEnv(raw)

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("registry: failed to parse catalog %s: %w", path, err)
	}
	return New(file.Subagents)
}

// Default returns the built-in catalog of eight phase-bound subagents,
// used when no catalog file is configured (e.g. in tests or a minimal
// deployment).
func Default() *Registry {
	r, err := New([]SubagentDescriptor{
		{
			Name:                  "requirements-analyst",
			Phase:                 1,
			Description:           "Elicits and structures the user's product idea into concrete requirements",
			Capabilities:          []string{"artifact_reference"},
			ProducedArtifactTypes: []string{"requirement"},
			PromptTemplateID:      "requirements-analyst/v1",
			SchemaValidatedOutput: false,
			MaxIterations:         3,
		},
		{
			Name:                  "system-architect",
			Phase:                 2,
			Description:           "Designs architecture, API surface, and database schema",
			Capabilities:          []string{"artifact_reference", "search"},
			ProducedArtifactTypes: []string{"architecture"},
			PromptTemplateID:      "system-architect/v1",
			SchemaValidatedOutput: false,
			MaxIterations:         3,
		},
		{
			Name:                  "project-planner",
			Phase:                 3,
			Description:           "Breaks architecture into tasks, dependencies, and milestones",
			Capabilities:          []string{"artifact_reference"},
			ProducedArtifactTypes: []string{"plan", "task"},
			PromptTemplateID:      "project-planner/v1",
			SchemaValidatedOutput: false,
			MaxIterations:         3,
		},
		{
			Name:                  "code-generator",
			Phase:                 4,
			Description:           "Generates application source files for a planned task",
			Capabilities:          []string{"file_write", "artifact_reference", "search"},
			ProducedArtifactTypes: []string{"code"},
			PromptTemplateID:      "code-generator/v1",
			SchemaValidatedOutput: true,
			MaxIterations:         5,
		},
		{
			Name:                  "component-researcher",
			Phase:                 4,
			Description:           "Investigates third-party components/libraries a task may need",
			Capabilities:          []string{"search", "artifact_reference"},
			ProducedArtifactTypes: []string{"code"},
			PromptTemplateID:      "component-researcher/v1",
			SchemaValidatedOutput: false,
			MaxIterations:         2,
		},
		{
			Name:                  "integration-expert",
			Phase:                 4,
			Description:           "Wires generated components to external services and APIs",
			Capabilities:          []string{"file_write", "api_test", "artifact_reference"},
			ProducedArtifactTypes: []string{"code"},
			PromptTemplateID:      "integration-expert/v1",
			SchemaValidatedOutput: true,
			MaxIterations:         5,
		},
		{
			Name:                  "qa-engineer",
			Phase:                 5,
			Description:           "Writes and runs test suites against generated code",
			Capabilities:          []string{"file_write", "api_test", "artifact_reference"},
			ProducedArtifactTypes: []string{"test"},
			PromptTemplateID:      "qa-engineer/v1",
			SchemaValidatedOutput: true,
			MaxIterations:         5,
		},
		{
			Name:                  "security-auditor",
			Phase:                 6,
			Description:           "Reviews code and compliance findings, issues final review",
			Capabilities:          []string{"artifact_reference", "search"},
			ProducedArtifactTypes: []string{"review", "compliance"},
			PromptTemplateID:      "security-auditor/v1",
			SchemaValidatedOutput: false,
			MaxIterations:         3,
		},
	})
	if err != nil {
		// The built-in catalog is a compile-time constant; a failure here
		// means the table above has a bug, not a runtime condition.
		panic(fmt.Sprintf("registry: invalid built-in catalog: %v", err))
	}
	return r
}
