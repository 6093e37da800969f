package database

import (
	"fmt"
	"time"

	"github.com/codeready-toolchain/builder/pkg/config"
)

// NewConfig turns the engine's YAML-driven config.DatabaseConfig (see
// cmd/builder's composition root) into the Config NewClient expects,
// parsing the pool-duration strings and re-validating the result. The
// env-var resolution itself (PasswordEnv -> password) already happened
// in config.Load; this function only reshapes and bounds-checks.
func NewConfig(c config.DatabaseConfig) (Config, error) {
	maxLifetime, err := parseDuration(c.ConnMaxLifetime)
	if err != nil {
		return Config{}, fmt.Errorf("invalid database.conn_max_lifetime: %w", err)
	}
	maxIdleTime, err := parseDuration(c.ConnMaxIdleTime)
	if err != nil {
		return Config{}, fmt.Errorf("invalid database.conn_max_idle_time: %w", err)
	}

	cfg := Config{
		Host:            c.Host,
		Port:            c.Port,
		User:            c.User,
		Password:        c.Password(),
		Database:        c.Database,
		SSLMode:         c.SSLMode,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: maxLifetime,
		ConnMaxIdleTime: maxIdleTime,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("database password is required")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("max_idle_conns (%d) cannot exceed max_open_conns (%d)",
			c.MaxIdleConns, c.MaxOpenConns)
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("max_open_conns must be at least 1")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns cannot be negative")
	}
	return nil
}

// parseDuration parses a duration string, supporting common formats
func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
