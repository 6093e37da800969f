// Package config loads the engine's entire operating configuration,
// database connection settings included: listen address, the LLM and
// sandbox provider endpoints, internal-auth and rate-limit tuning, the
// subagent catalog path, and the PostgreSQL pool. Values come from a
// YAML file with ${VAR} expansion, overlaid on defaults and then the
// environment; pkg/database consumes the Database section via
// database.NewConfig instead of reading the environment itself.
package config

import "time"

// Config is the umbrella object returned by Load, used by the
// composition root (cmd/builder) to construct every component.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	LLM          LLMConfig          `yaml:"llm"`
	Sandbox      SandboxConfig      `yaml:"sandbox"`
	InternalAuth InternalAuthConfig `yaml:"internal_auth"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Health       HealthConfig       `yaml:"health"`
	Retention    RetentionConfig    `yaml:"retention"`

	// SubagentCatalogPath, if set, is loaded by registry.LoadCatalog;
	// otherwise registry.Default() supplies the built-in eight-subagent
	// catalog.
	SubagentCatalogPath string `yaml:"subagent_catalog_path,omitempty"`
}

// DatabaseConfig points the composition root at PostgreSQL and tunes
// its connection pool. database.NewConfig turns this into the
// database.Config NewClient expects, parsing the duration strings and
// resolving PasswordEnv the same way LLMConfig/SandboxConfig resolve
// their API keys.
type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	PasswordEnv string `yaml:"password_env"`
	Database    string `yaml:"database"`
	SSLMode     string `yaml:"sslmode"`

	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime string `yaml:"conn_max_idle_time"`

	// password is resolved from the environment at load time, not
	// unmarshaled from YAML directly — the YAML only ever names the
	// env var, never the secret.
	password string
}

// Password returns the resolved database credential.
func (c DatabaseConfig) Password() string { return c.password }

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
}

// LLMConfig points the LLM executor at its gateway.
type LLMConfig struct {
	BaseURL            string `yaml:"base_url"`
	APIKeyEnv          string `yaml:"api_key_env"`
	Model              string `yaml:"model,omitempty"`
	MaxTokens          int    `yaml:"max_tokens,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`

	// apiKey is resolved from the environment at load time, not
	// unmarshaled from YAML directly — the YAML only ever names the
	// env var, never the secret.
	apiKey string
}

// APIKey returns the resolved LLM credential.
func (c LLMConfig) APIKey() string { return c.apiKey }

// SandboxConfig points the sandbox manager at its provider.
type SandboxConfig struct {
	BaseURL            string `yaml:"base_url"`
	APIKeyEnv          string `yaml:"api_key_env"`
	TemplateID         string `yaml:"template_id"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`

	apiKey string
}

// APIKey returns the resolved sandbox provider credential.
func (c SandboxConfig) APIKey() string { return c.apiKey }

// InternalAuthConfig configures the service-to-service token signer.
type InternalAuthConfig struct {
	SigningSecretEnv string        `yaml:"signing_secret_env"`
	TokenTTL         time.Duration `yaml:"token_ttl,omitempty"`

	signingSecret string
}

// SigningSecret returns the resolved HMAC key.
func (c InternalAuthConfig) SigningSecret() string { return c.signingSecret }

// RateLimitConfig tunes the per-key token buckets.
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// HealthConfig tunes the health poll cadence and the failover backup pool.
type HealthConfig struct {
	PollIntervalMs int `yaml:"poll_interval_ms"`
	// WarmPoolSize is the number of pre-warmed backup sandboxes kept ready
	// for StrategyFailover. Zero disables the S4 swap: failover always
	// falls back to marking the session failed.
	WarmPoolSize int `yaml:"warm_pool_size"`
	// WarmPoolTemplateID is the sandbox template used to provision backup
	// sandboxes; defaults to "node-20", independent of
	// Sandbox.TemplateID.
	WarmPoolTemplateID string `yaml:"warm_pool_template_id"`
}

// RetentionConfig tunes idle-sandbox cleanup.
type RetentionConfig struct {
	SandboxIdleTimeoutMs int `yaml:"sandbox_idle_timeout_ms"`
}
