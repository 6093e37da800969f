package config

import (
	"fmt"
	"os"
	"strconv"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads an optional YAML config file at path (pass "" to skip
// straight to defaults), expands ${VAR}/${VAR:-default} references via
// ExpandEnv, merges the result over Defaults() with mergo (user values
// win, zero-value fields keep the default), resolves the four
// secret-bearing env vars, and validates the result.
//
// loadEnvFile controls whether a local .env is read first via
// godotenv — true for local/dev runs (cmd/builder's default), false
// when the process environment is already fully populated (containers,
// CI).
func Load(path string, loadEnvFile bool) (*Config, error) {
	if loadEnvFile {
		// Local convenience only: a missing .env is not an error.
		_ = godotenv.Load()
	}

	cfg := Defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, NewLoadError(path, fmt.Errorf("file not found"))
			}
			return nil, NewLoadError(path, err)
		}
		raw = ExpandEnv(raw)

		var fromFile Config
		if err := yaml.Unmarshal(raw, &fromFile); err != nil {
			return nil, NewLoadError(path, err)
		}
		if err := mergo.Merge(&cfg, fromFile, mergo.WithOverride); err != nil {
			return nil, NewLoadError(path, fmt.Errorf("failed to merge: %w", err))
		}
	}

	if err := resolveSecrets(&cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveSecrets looks up the env vars named in the config (not literal
// secrets) and stashes the resolved values on the unexported fields
// exposed via APIKey()/SigningSecret().
func resolveSecrets(cfg *Config) error {
	cfg.Database.password = os.Getenv(cfg.Database.PasswordEnv)
	cfg.LLM.apiKey = os.Getenv(cfg.LLM.APIKeyEnv)
	cfg.Sandbox.apiKey = os.Getenv(cfg.Sandbox.APIKeyEnv)
	cfg.InternalAuth.signingSecret = os.Getenv(cfg.InternalAuth.SigningSecretEnv)
	if cfg.Sandbox.TemplateID == "" {
		cfg.Sandbox.TemplateID = os.Getenv("SANDBOX_TEMPLATE_ID")
	}
	return nil
}

// applyEnvOverrides lets the best-known tuning knobs be set straight
// from the environment without a config file: LOG_LEVEL,
// HEALTH_POLL_MS, and SANDBOX_IDLE_TIMEOUT_MS.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Server.LogLevel = v
	}
	if n, ok := envInt("HEALTH_POLL_MS"); ok {
		cfg.Health.PollIntervalMs = n
	}
	if n, ok := envInt("SANDBOX_IDLE_TIMEOUT_MS"); ok {
		cfg.Retention.SandboxIdleTimeoutMs = n
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// validate enforces the required environment variables (DB_PASSWORD,
// LLM_API_KEY, SANDBOX_API_KEY, SANDBOX_TEMPLATE_ID,
// INTERNAL_SIGNING_SECRET) and a handful of structural invariants.
func validate(cfg *Config) error {
	if cfg.Database.password == "" {
		return NewValidationError("database.password_env", fmt.Errorf("%s is not set", cfg.Database.PasswordEnv))
	}
	if cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		return NewValidationError("database.max_idle_conns", fmt.Errorf("cannot exceed max_open_conns (%d)", cfg.Database.MaxOpenConns))
	}
	if cfg.Database.MaxOpenConns < 1 {
		return NewValidationError("database.max_open_conns", fmt.Errorf("must be at least 1"))
	}
	if cfg.LLM.apiKey == "" {
		return NewValidationError("llm.api_key_env", fmt.Errorf("%s is not set", cfg.LLM.APIKeyEnv))
	}
	if cfg.Sandbox.apiKey == "" {
		return NewValidationError("sandbox.api_key_env", fmt.Errorf("%s is not set", cfg.Sandbox.APIKeyEnv))
	}
	if cfg.Sandbox.TemplateID == "" {
		return NewValidationError("sandbox.template_id", fmt.Errorf("required"))
	}
	if cfg.InternalAuth.signingSecret == "" {
		return NewValidationError("internal_auth.signing_secret_env", fmt.Errorf("%s is not set", cfg.InternalAuth.SigningSecretEnv))
	}
	if cfg.Health.PollIntervalMs <= 0 {
		return NewValidationError("health.poll_interval_ms", fmt.Errorf("must be positive"))
	}
	if cfg.Retention.SandboxIdleTimeoutMs <= 0 {
		return NewValidationError("retention.sandbox_idle_timeout_ms", fmt.Errorf("must be positive"))
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 || cfg.RateLimit.Burst <= 0 {
		return NewValidationError("rate_limit", fmt.Errorf("requests_per_second and burst must be positive"))
	}
	return nil
}
