package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProfilesPosts, downCreateProfilesPosts)
}

func upCreateProfilesPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS profiles (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR NOT NULL,
		full_name VARCHAR NOT NULL DEFAULT '',
		biography TEXT NOT NULL DEFAULT '',
		profile_data JSONB,
		profile_type VARCHAR NOT NULL DEFAULT 'instagram',
		is_private BOOLEAN NOT NULL DEFAULT FALSE,
		followers_count BIGINT NOT NULL DEFAULT 0,
		following_count BIGINT NOT NULL DEFAULT 0,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		is_car_profile BOOLEAN NOT NULL DEFAULT FALSE,
		last_updated TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE UNIQUE INDEX IF NOT EXISTS profiles_username_key ON profiles (username);

	CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		profile_id BIGINT NOT NULL REFERENCES profiles (id) ON DELETE CASCADE,
		type VARCHAR NOT NULL,
		shortcode VARCHAR NOT NULL DEFAULT '',
		display_url TEXT NOT NULL,
		timestamp BIGINT NOT NULL DEFAULT 0,
		caption TEXT,
		location JSONB,
		likes_count BIGINT NOT NULL DEFAULT 0,
		username VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS posts_username_timestamp_idx ON posts (username, timestamp DESC);

	CREATE TABLE IF NOT EXISTS post_media (
		id BIGSERIAL PRIMARY KEY,
		post_id BIGINT NOT NULL REFERENCES posts (id) ON DELETE CASCADE,
		type VARCHAR NOT NULL,
		display_url TEXT NOT NULL,
		media_order INT NOT NULL,
		username VARCHAR NOT NULL,
		UNIQUE (post_id, media_order)
	);
	`)
	return err
}

func downCreateProfilesPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE IF EXISTS post_media;
	DROP TABLE IF EXISTS posts;
	DROP TABLE IF EXISTS profiles;
	`)
	return err
}
