// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"time"

	"github.com/openterrace/clubpoints/models"
)

// resolveUser maps an email to a stable user identity, creating one on
// first contact. Runs inside the caller's transaction so identity
// creation commits or rolls back together with the write that needed it.
//
// The supplied name is only used when a new row is created; an existing
// row keeps its stored name. Two racing first-time writers are resolved
// by the unique constraint on email: the insert is ON CONFLICT DO
// NOTHING so the loser's transaction stays usable (a bare insert would
// abort it on Postgres), and the loser re-reads the winner's row.
func resolveUser(tx *sql.Tx, name, email string) (models.User, error) {
	var u models.User

	err := tx.QueryRow(`
		SELECT id, name, email FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email)
	if err == nil {
		return u, nil
	}
	if err != sql.ErrNoRows {
		return models.User{}, err
	}

	err = tx.QueryRow(`
		INSERT INTO users (name, email, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`, name, email, time.Now()).Scan(&u.ID)
	if err == nil {
		u.Name = name
		u.Email = email
		return u, nil
	}
	if err != sql.ErrNoRows {
		return models.User{}, err
	}

	// Lost the creation race; the row exists now.
	err = tx.QueryRow(`
		SELECT id, name, email FROM users WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
