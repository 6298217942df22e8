// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// driver is "postgres" or "sqlite"; the two dialects differ only in how
// auto-increment keys are declared.
func CreateSchema(db *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", driver)
	}
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

var schemas = map[string]string{
	"postgres": fmt.Sprintf(schema, "BIGSERIAL PRIMARY KEY"),
	"sqlite":   fmt.Sprintf(schema, "INTEGER PRIMARY KEY AUTOINCREMENT"),
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id %[1]s,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Players
CREATE TABLE IF NOT EXISTS players (
    id %[1]s,
    name TEXT NOT NULL,
    club TEXT NOT NULL DEFAULT '',
    photo_url TEXT NOT NULL DEFAULT '',
    total_points INTEGER NOT NULL DEFAULT 0
);

-- Allocations
CREATE TABLE IF NOT EXISTS allocations (
    id %[1]s,
    user_id BIGINT NOT NULL REFERENCES users(id),
    player_id BIGINT NOT NULL REFERENCES players(id),
    points_allocated INTEGER NOT NULL DEFAULT 0 CHECK (points_allocated >= 0),
    UNIQUE (user_id, player_id)
);

CREATE INDEX IF NOT EXISTS idx_allocations_user_id ON allocations(user_id);
CREATE INDEX IF NOT EXISTS idx_allocations_player_id ON allocations(player_id);

-- Matches
CREATE TABLE IF NOT EXISTS matches (
    id %[1]s,
    match_date TEXT NOT NULL,
    opponent TEXT NOT NULL,
    home_away TEXT NOT NULL DEFAULT 'home' CHECK (home_away IN ('home', 'away')),
    status TEXT NOT NULL DEFAULT 'final' CHECK (status IN ('upcoming', 'live', 'final'))
);

CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(match_date);

-- POTM Votes
CREATE TABLE IF NOT EXISTS potm_votes (
    id %[1]s,
    match_id BIGINT NOT NULL REFERENCES matches(id),
    email TEXT NOT NULL,
    player_id BIGINT NOT NULL REFERENCES players(id),
    voted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (match_id, email)
);

CREATE INDEX IF NOT EXISTS idx_potm_votes_match_id ON potm_votes(match_id);
CREATE INDEX IF NOT EXISTS idx_potm_votes_player_id ON potm_votes(player_id);
`
