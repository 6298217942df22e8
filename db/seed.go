// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Seed inserts a demo roster and fixture list when the database is empty.
// Idempotent: a non-empty players table means a real deployment (or a
// previous seed) and nothing is written.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count players: %w", err)
	}
	if count > 0 {
		return nil
	}

	players := []struct {
		name, club string
		points     int
	}{
		{"Marco Silva", "Harchester United", 72},
		{"Deniz Kaya", "Harchester United", 64},
		{"Tommy Abbott", "Harchester United", 55},
		{"Lucas Moreau", "Harchester United", 41},
		{"Sol Adeyemi", "Harchester United", 38},
		{"Petr Novak", "Harchester United", 20},
	}
	for _, p := range players {
		_, err := db.Exec(`
			INSERT INTO players (name, club, total_points)
			VALUES ($1, $2, $3)
		`, p.name, p.club, p.points)
		if err != nil {
			return fmt.Errorf("failed to seed player %s: %w", p.name, err)
		}
	}

	matches := []struct {
		date, opponent, homeAway, status string
	}{
		{"2025-08-09", "Millbrook Rovers", "home", "final"},
		{"2025-08-16", "Eastgate Athletic", "away", "final"},
		{"2025-08-23", "Kirkdale Town", "home", "final"},
	}
	for _, m := range matches {
		_, err := db.Exec(`
			INSERT INTO matches (match_date, opponent, home_away, status)
			VALUES ($1, $2, $3, $4)
		`, m.date, m.opponent, m.homeAway, m.status)
		if err != nil {
			return fmt.Errorf("failed to seed match vs %s: %w", m.opponent, err)
		}
	}

	return nil
}
