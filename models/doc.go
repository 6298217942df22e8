// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePlayerRequest: name, club, photo_url
  - AdjustPointsRequest: delta, set (both optional pointers)
  - CreateMatchRequest: date, opponent, home_away, status
  - SubmitAllocationsRequest: name, email, allocations
  - CastVoteRequest: name, email, player_id

# Response Types

Types for JSON responses:

  - CreatePlayerResponse: id
  - AdjustPointsResponse: id, total_points
  - CreateMatchResponse: id
  - SubmitAllocationsResponse: user
  - CastVoteResponse: ok
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: stable identity keyed by unique email
  - Player: roster entry with mutable total_points
  - Match: fixture with home/away flag and status tag
  - Allocation: one (user, player) slice of the 100-point budget
  - Vote: one (match, email) POTM choice
  - LeaderboardEntry: ranked portfolio row
  - MatchResultRow: per-player vote tally for one match

# FlexPoints

Allocation point values arrive from loosely-typed clients. FlexPoints
decodes JSON numbers (truncating), numeric strings, and coerces anything
else to 0 so the budget check sees a well-defined sum.

# Constants

Match status values:

	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinal    = "final"

Venue values:

	HomeAwayHome = "home"
	HomeAwayAway = "away"

Budget:

	AllocationBudget = 100
*/
package models
