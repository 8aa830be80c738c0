package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

// NewDB opens an instrumented Postgres pool and checks that it is reachable.
func NewDB(ctx context.Context, cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, DefaultConnectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS orders (
		id                   TEXT PRIMARY KEY,
		owner_id             TEXT NOT NULL,
		items                JSONB NOT NULL,
		total                NUMERIC(12, 2) NOT NULL,
		status               TEXT NOT NULL,
		event_date           TEXT NOT NULL,
		delivery_address     TEXT NOT NULL,
		order_date           TIMESTAMPTZ NOT NULL,
		special_instructions TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_orders_owner_id ON orders (owner_id, order_date DESC);

	CREATE TABLE IF NOT EXISTS inquiries (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL,
		form          JSONB NOT NULL,
		status        TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
