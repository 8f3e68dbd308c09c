// Package legacysql stores legacy delivery records, one row per order, with
// database/sql and lib/pq. Sub-states and the status history are JSONB
// columns; the history is stored chronologically and only ever appended to.
package legacysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tracking/internal/adapters/out/postgres/pgerr"

	_ "github.com/lib/pq"
)

const resource = "legacy store"

// Schema creates the legacy_delivery_records table if it is missing.
const Schema = `
CREATE TABLE IF NOT EXISTS legacy_delivery_records (
	order_id        uuid PRIMARY KEY,
	customer_id     varchar(255) NOT NULL,
	address         jsonb        NOT NULL DEFAULT '{}'::jsonb,
	vendor_dispatch jsonb        NOT NULL,
	tailor_delivery jsonb        NOT NULL,
	overall_status  varchar(32)  NOT NULL,
	status_history  jsonb        NOT NULL DEFAULT '[]'::jsonb,
	updated_at      timestamptz  NOT NULL DEFAULT now()
)`

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open legacy database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, pgerr.Translate(err, resource)
	}
	return db, nil
}

// Migrate applies Schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return pgerr.Translate(err, resource)
	}
	return nil
}
