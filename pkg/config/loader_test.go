package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "db-secret")
	t.Setenv("LLM_API_KEY", "llm-secret")
	t.Setenv("SANDBOX_API_KEY", "sandbox-secret")
	t.Setenv("INTERNAL_SIGNING_SECRET", "signing-secret")
}

func TestLoadDefaultsOnly(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SANDBOX_TEMPLATE_ID", "node20")

	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "db-secret", cfg.Database.Password())
	assert.Equal(t, "builder", cfg.Database.Database)
	assert.Equal(t, "llm-secret", cfg.LLM.APIKey())
	assert.Equal(t, "sandbox-secret", cfg.Sandbox.APIKey())
	assert.Equal(t, "signing-secret", cfg.InternalAuth.SigningSecret())
}

func TestLoadMissingRequiredEnvFails(t *testing.T) {
	_, err := Load("", false)
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen_addr: ":9090"
sandbox:
  template_id: "${SANDBOX_TEMPLATE}"
`), 0o644))
	t.Setenv("SANDBOX_TEMPLATE", "python311")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, "python311", cfg.Sandbox.TemplateID)
	// Untouched defaults survive the merge.
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadMissingFileErrors(t *testing.T) {
	setRequiredEnv(t)
	_, err := Load("/no/such/path.yaml", false)
	require.Error(t, err)
	var lerr *LoadError
	assert.ErrorAs(t, err, &lerr)
}
