package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Match status constants
const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinal    = "final"
)

// Home/away constants
const (
	HomeAwayHome = "home"
	HomeAwayAway = "away"
)

// AllocationBudget is the fixed number of points every complete
// submission must distribute across the roster.
const AllocationBudget = 100

// Request types

type CreatePlayerRequest struct {
	Name     string `json:"name"`
	Club     string `json:"club"`
	PhotoURL string `json:"photo_url"`
}

type AdjustPointsRequest struct {
	Delta *int `json:"delta"`
	Set   *int `json:"set"`
}

type CreateMatchRequest struct {
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	HomeAway string `json:"home_away"`
	Status   string `json:"status"`
}

// AllocationEntry is one slice of a user's 100-point budget.
// PlayerID is a pointer so a missing field can be told apart from 0.
type AllocationEntry struct {
	PlayerID        *int64     `json:"player_id"`
	PointsAllocated FlexPoints `json:"points_allocated"`
}

type SubmitAllocationsRequest struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Allocations []AllocationEntry `json:"allocations"`
}

type CastVoteRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PlayerID *int64 `json:"player_id"`
}

// FlexPoints tolerates sloppy client payloads: JSON numbers are truncated
// to int, numeric strings are parsed, anything else counts as 0.
type FlexPoints int

func (p *FlexPoints) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = FlexPoints(int(f))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*p = FlexPoints(n)
			return nil
		}
	}
	*p = 0
	return nil
}

// Response types

type CreatePlayerResponse struct {
	ID int64 `json:"id"`
}

type AdjustPointsResponse struct {
	ID          int64 `json:"id"`
	TotalPoints int   `json:"total_points"`
}

type CreateMatchResponse struct {
	ID int64 `json:"id"`
}

type SubmitAllocationsResponse struct {
	User User `json:"user"`
}

type CastVoteResponse struct {
	OK bool `json:"ok"`
}

// Domain types

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Player struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Club        string `json:"club"`
	PhotoURL    string `json:"photo_url"`
	TotalPoints int    `json:"total_points"`
}

type Match struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	HomeAway string `json:"home_away"`
	Status   string `json:"status"`
}

type Allocation struct {
	ID              int64 `json:"id"`
	UserID          int64 `json:"user_id"`
	PlayerID        int64 `json:"player_id"`
	PointsAllocated int   `json:"points_allocated"`
}

type Vote struct {
	ID       int64     `json:"id"`
	MatchID  int64     `json:"match_id"`
	Email    string    `json:"-"` // Never expose in JSON
	PlayerID int64     `json:"player_id"`
	VotedAt  time.Time `json:"voted_at"`
}

// LeaderboardEntry is one ranked row of the portfolio leaderboard.
type LeaderboardEntry struct {
	UserID          int64   `json:"user_id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PortfolioPoints float64 `json:"portfolio_points"`
}

// MatchResultRow is one player's vote tally for a match. Every registered
// player appears in results, including those with zero votes.
type MatchResultRow struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Votes      int    `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
