package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over session prompts and
// artifact payloads, which ent's schema DSL has no direct expression for.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_initial_prompt_gin
		ON sessions USING gin(to_tsvector('english', initial_prompt))`)
	if err != nil {
		return fmt.Errorf("failed to create initial_prompt GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_artifacts_payload_gin
		ON artifacts USING gin(payload)`)
	if err != nil {
		return fmt.Errorf("failed to create artifact payload GIN index: %w", err)
	}

	return nil
}
