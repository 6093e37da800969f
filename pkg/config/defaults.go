package config

import "time"

// Defaults returns the baseline configuration: every field here has a
// fixed fallback so a deployment can
// start from nothing but DB_PASSWORD, LLM_API_KEY, SANDBOX_API_KEY,
// SANDBOX_TEMPLATE_ID, and INTERNAL_SIGNING_SECRET.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
			LogLevel:   "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "builder",
			PasswordEnv:     "DB_PASSWORD",
			Database:        "builder",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: "1h",
			ConnMaxIdleTime: "15m",
		},
		LLM: LLMConfig{
			BaseURL:   "http://localhost:9000",
			APIKeyEnv: "LLM_API_KEY",
			MaxTokens: 4096,
		},
		Sandbox: SandboxConfig{
			BaseURL:   "http://localhost:9100",
			APIKeyEnv: "SANDBOX_API_KEY",
		},
		InternalAuth: InternalAuthConfig{
			SigningSecretEnv: "INTERNAL_SIGNING_SECRET",
			TokenTTL:         5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Health: HealthConfig{
			PollIntervalMs:     30000,
			WarmPoolSize:       0,
			WarmPoolTemplateID: "node-20",
		},
		Retention: RetentionConfig{
			SandboxIdleTimeoutMs: 1800000,
		},
	}
}
