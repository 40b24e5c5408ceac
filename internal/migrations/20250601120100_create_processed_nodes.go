package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProcessedNodes, downCreateProcessedNodes)
}

func upCreateProcessedNodes(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS processed_nodes (
		id TEXT PRIMARY KEY,
		username VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS processed_nodes_username_idx ON processed_nodes (username);
	`)
	return err
}

func downCreateProcessedNodes(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS processed_nodes;`)
	return err
}
