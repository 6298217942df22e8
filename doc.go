// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the clubpoints API server.

clubpoints runs a fan community's point-allocation game and a
Player of the Match (POTM) poll. Users split a fixed 100-point budget
across the club's roster; each player's season score multiplies each
share into a portfolio score, ranked on a leaderboard. Per match, each
user casts one POTM vote; results are tallied over the full roster.

# Starting the Server

The server reads environment variables (a .env file is honored) or CLI
flags:

	DATABASE_TYPE=sqlite go run main.go

Or with flags:

	go run main.go -p 8654 -t postgres -d "postgres://..."

# Configuration

Settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string; defaults to a local file for sqlite
  - PORT (-p): server port (default: 8654)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (players, matches, allocations, leaderboard, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: Request/response types
  - db: Schema creation, seeding, error classification
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
