package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EightPhaseBoundSubagents(t *testing.T) {
	r := Default()

	names := r.Names()
	assert.Contains(t, names, "requirements-analyst")
	assert.Contains(t, names, "system-architect")
	assert.Contains(t, names, "code-generator")

	d, ok := r.ByName("code-generator")
	require.True(t, ok)
	assert.Equal(t, 4, d.Phase)
	assert.True(t, d.SchemaValidatedOutput)
	assert.True(t, d.ProducesType("code"))
	assert.False(t, d.ProducesType("review"))
}

func TestByPhase_SortedAndPhaseScoped(t *testing.T) {
	r := Default()

	phase4 := r.ByPhase(4)
	require.Len(t, phase4, 3)
	assert.Equal(t, "code-generator", phase4[0].Name)
	assert.Equal(t, "component-researcher", phase4[1].Name)
	assert.Equal(t, "integration-expert", phase4[2].Name)

	assert.Empty(t, r.ByPhase(99))
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New([]SubagentDescriptor{
		{Name: "a", Phase: 1},
		{Name: "a", Phase: 2},
	})
	assert.ErrorContains(t, err, "duplicate")
}

func TestNew_RejectsEmptyName(t *testing.T) {
	_, err := New([]SubagentDescriptor{{Phase: 1}})
	assert.ErrorContains(t, err, "empty name")
}

func TestByName_ReturnsDefensiveCopy(t *testing.T) {
	r := Default()
	d, ok := r.ByName("system-architect")
	require.True(t, ok)

	d.Capabilities[0] = "mutated"

	d2, _ := r.ByName("system-architect")
	assert.NotEqual(t, "mutated", d2.Capabilities[0])
}

func TestLoadCatalog_ExpandsEnvWithDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	require.NoError(t, os.Setenv("BUILDER_TEST_PHASE", "2"))
	t.Cleanup(func() { _ = os.Unsetenv("BUILDER_TEST_PHASE") })

	yamlContent := `
subagents:
  - name: custom-agent
    phase: ${BUILDER_TEST_PHASE}
    prompt_template_id: custom-agent/v1
    produced_artifact_types: ["architecture"]
  - name: fallback-agent
    phase: ${BUILDER_TEST_MISSING:-3}
    prompt_template_id: fallback-agent/v1
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o644))

	r, err := LoadCatalog(path)
	require.NoError(t, err)

	d, ok := r.ByName("custom-agent")
	require.True(t, ok)
	assert.Equal(t, 2, d.Phase)

	fallback, ok := r.ByName("fallback-agent")
	require.True(t, ok)
	assert.Equal(t, 3, fallback.Phase)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog("/nonexistent/catalog.yaml")
	assert.Error(t, err)
}

func TestToolsFor_DerivedFromCapabilities(t *testing.T) {
	r := Default()

	tools := r.ToolsFor("code-generator")
	require.NotEmpty(t, tools)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
		assert.NotNil(t, tool.InputSchema)
	}
	// file_write grants both mutation tools; search and
	// artifact_reference one each.
	assert.Contains(t, names, "write_file")
	assert.Contains(t, names, "edit_file")
	assert.Contains(t, names, "resolve_artifacts")
	assert.Contains(t, names, "search")

	assert.Nil(t, r.ToolsFor("no-such-agent"))
}

func TestToolsFor_UnknownCapabilityGrantsNothing(t *testing.T) {
	r, err := New([]SubagentDescriptor{
		{Name: "odd", Phase: 1, Capabilities: []string{"telepathy"}},
	})
	require.NoError(t, err)
	assert.Empty(t, r.ToolsFor("odd"))
}
