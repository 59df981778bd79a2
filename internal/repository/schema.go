package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schema = `
	CREATE TABLE IF NOT EXISTS providers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		role VARCHAR(64) NOT NULL,
		category VARCHAR(128) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS providers_lat_lng_idx ON providers (latitude, longitude);
	CREATE INDEX IF NOT EXISTS providers_role_idx ON providers (lower(role));

	CREATE TABLE IF NOT EXISTS entity_locations (
		entity_id VARCHAR(255) PRIMARY KEY,
		current JSONB NOT NULL,
		history JSONB NOT NULL DEFAULT '[]',
		approximate JSONB,
		version BIGINT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	ALTER TABLE entity_locations ADD COLUMN IF NOT EXISTS role VARCHAR(64) NOT NULL DEFAULT '';
	ALTER TABLE entity_locations ADD COLUMN IF NOT EXISTS latitude DOUBLE PRECISION;
	ALTER TABLE entity_locations ADD COLUMN IF NOT EXISTS longitude DOUBLE PRECISION;
	CREATE INDEX IF NOT EXISTS entity_locations_role_lat_lng_idx
		ON entity_locations (latitude, longitude) WHERE role <> '';
`

// EnsureSchema creates the tables this service reads and writes if they do not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}
