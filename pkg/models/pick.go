package models

import "time"

// Sport identifies a league we track. Free-text sport labels from feeds are
// resolved to one of these by the canonicalizer.
type Sport string

const (
	SportNFL     Sport = "NFL"
	SportNBA     Sport = "NBA"
	SportMLB     Sport = "MLB"
	SportNHL     Sport = "NHL"
	SportNCAAF   Sport = "NCAAF"
	SportNCAAB   Sport = "NCAAB"
	SportOther   Sport = "OTHER"
	SportUnknown Sport = "UNKNOWN"
)

// AllSports lists the leagues with canonicalization tables and schedule support.
var AllSports = []Sport{SportNFL, SportNBA, SportMLB, SportNHL, SportNCAAF, SportNCAAB}

// BetType classifies the wager market
type BetType string

const (
	BetTypeSpread    BetType = "SPREAD"
	BetTypeMoneyline BetType = "MONEYLINE"
	BetTypeTotal     BetType = "TOTAL"
	BetTypeOther     BetType = "OTHER"
)

// TeamID is a stable canonical team identifier (e.g. "NBA:LAL").
// TeamUnknown marks a team the alias tables could not resolve.
type TeamID string

const TeamUnknown TeamID = "UNKNOWN"

// RawPick is an as-received record from one upstream feed. It is never
// mutated downstream; normalization derives a NormalizedPick from it.
type RawPick struct {
	Capper   string `json:"capper"`
	Sport    string `json:"sport"`
	Team     string `json:"team"`
	BetText  string `json:"bet_text"`
	Line     string `json:"line"`
	Matchup  string `json:"matchup,omitempty"`
	PickedAt string `json:"picked_at"`
	Source   string `json:"source"`
}

// NormalizedPick is the canonical shape every feed record is reduced to
// before aggregation.
type NormalizedPick struct {
	Capper  string   `json:"capper"`
	Sport   Sport    `json:"sport"`
	TeamID  TeamID   `json:"team_id"`
	BetType BetType  `json:"bet_type"`
	Line    *float64 `json:"line,omitempty"` // nil when no numeric line was extractable; zero is a valid line
	Date    string   `json:"date"`           // YYYY-MM-DD in the reporting timezone
	Matchup string   `json:"matchup,omitempty"`

	// Raw is kept for diagnostics only; output consumers must not depend on it.
	Raw *RawPick `json:"-"`
}

// NormalizeDiagnostics counts records dropped during normalization, by reason.
// A malformed record never aborts the batch; it lands here instead.
type NormalizeDiagnostics struct {
	Input   int            `json:"input"`
	Output  int            `json:"output"`
	Dropped int            `json:"dropped"`
	Reasons map[string]int `json:"reasons,omitempty"`
}

// ScheduleEntry is one game on today's slate, as supplied by the schedule
// provider. Read-only.
type ScheduleEntry struct {
	Sport     Sport      `json:"sport"`
	HomeTeam  TeamID     `json:"home_team"`
	AwayTeam  TeamID     `json:"away_team"`
	StartTime time.Time  `json:"start_time"`
	Status    GameStatus `json:"status"`
}

// GameStatus is the schedule provider's view of a game's progress
type GameStatus string

const (
	GameScheduled  GameStatus = "scheduled"
	GameInProgress GameStatus = "in-progress"
	GameFinal      GameStatus = "final"
)

// RejectedPick pairs a pick that failed the schedule filter with the reason,
// so canonicalization-table gaps are diagnosable rather than silent.
type RejectedPick struct {
	Pick   NormalizedPick `json:"pick"`
	Reason string         `json:"reason"`
}

// FilterResult is the schedule filter's output. Degraded lists sports whose
// schedule could not be retrieved and were passed through unfiltered
// (fail-open policy).
type FilterResult struct {
	Filtered []NormalizedPick `json:"filtered"`
	Rejected []RejectedPick   `json:"rejected"`
	Degraded []Sport          `json:"degraded,omitempty"`
}

// ErrorResponse is the standard JSON error shape
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
