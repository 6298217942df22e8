// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation, demo seeding, and driver
error classification.

# Schema Creation

CreateSchema initializes all required tables for the configured driver:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. Both dialects share one schema template; only the primary key
declaration differs (BIGSERIAL vs INTEGER AUTOINCREMENT).

# Seeding

Seed inserts a demo roster and fixture list, but only when the players
table is empty:

	if err := db.Seed(conn); err != nil {
		log.Fatal(err)
	}

# Tables

The schema includes:

  - users: One row per email; lazily created on first contact
  - players: Roster with mutable total_points
  - allocations: One row per (user, player), points_allocated
  - matches: Fixtures with home/away flag and status tag
  - potm_votes: One row per (match, email), the chosen player

# Relationships

	users 1──* allocations *──1 players
	matches 1──* potm_votes *──1 players

Deletion is not a supported operation, so no cascade rules are declared.

# Constraints

Upserts and identity resolution lean on the unique constraints:

  - users.email (unique)
  - allocations.(user_id, player_id) (unique)
  - potm_votes.(match_id, email) (unique)

# Error Classification

Constraint failures surface from lib/pq and modernc.org/sqlite as
driver-specific types. Classify, IsDuplicateKey, and
IsForeignKeyViolation map them to the package sentinels ErrDuplicateKey
and ErrForeignKeyViolation so handlers never inspect driver strings.
*/
package db
