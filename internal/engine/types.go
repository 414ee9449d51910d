package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// Cents is a fixed-point money amount. All wagering math runs on integer cents
// so obligations net to exactly zero without floating-point epsilons.
type Cents int64

// Score is one hole's entry for a player. Nil Strokes means the hole has not
// been played; scorers must skip such holes, never substitute zero.
type Score struct {
	Strokes *int
	Putts   *int
}

// Player is a snapshot of one participant: identity, handicap allowance and
// scores keyed by hole number (1-18).
type Player struct {
	ID             uuid.UUID
	Name           string
	CourseHandicap *int
	Scores         map[int]Score
}

// Gross returns the player's gross strokes on a hole, false if unplayed.
func (p Player) Gross(hole int) (int, bool) {
	s, ok := p.Scores[hole]
	if !ok || s.Strokes == nil {
		return 0, false
	}
	return *s.Strokes, true
}

// PuttCount returns recorded putts on a hole, false if putts were not tracked.
func (p Player) PuttCount(hole int) (int, bool) {
	s, ok := p.Scores[hole]
	if !ok || s.Putts == nil {
		return 0, false
	}
	return *s.Putts, true
}

// Hole is one hole of the course layout.
type Hole struct {
	Number      int
	Par         int
	StrokeIndex int
}

// Game is the engine's view of one configured wager. Players are in slot
// order, which drives the wolf/banker rotation and the default Vegas pairing.
// Only the side-data fields for the game's own type are populated.
type Game struct {
	ID       uuid.UUID
	Type     models.GameType
	BetCents Cents
	Players  []Player

	WolfDecisions   []models.WolfDecision
	BankerDecisions []models.BankerDecision
	VegasTeamA      []uuid.UUID
	VegasTeamB      []uuid.UUID
	BingoAwards     []models.BingoAward
}

// Obligation is a directional debt: From pays To. Amount is always positive.
type Obligation struct {
	FromID uuid.UUID `json:"from_id"`
	ToID   uuid.UUID `json:"to_id"`
	Amount Cents     `json:"amount_cents"`
}

// Standing is one player's final line in a game result.
type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Points   float64   `json:"points"`
	Money    Cents     `json:"money_cents"`
}

// HoleOutcome is the per-hole detail attached to a game result. WinnerID is
// nil when the hole was tied, carried, or excluded for missing scores.
type HoleOutcome struct {
	Hole     int        `json:"hole"`
	WinnerID *uuid.UUID `json:"winner_id,omitempty"`
	Value    Cents      `json:"value_cents,omitempty"`
	Carried  bool       `json:"carried,omitempty"`
	Skipped  bool       `json:"skipped,omitempty"`
}

// SegmentResult is one Nassau segment (or the single match play contest).
type SegmentResult struct {
	Segment     models.PressSegment `json:"segment"`
	WinnerID    *uuid.UUID          `json:"winner_id,omitempty"`
	Margin      int                 `json:"margin"`
	HolesPlayed int                 `json:"holes_played"`
	Amount      Cents               `json:"amount_cents"`
}

// MatchStatus is the live state of a two-player match over a hole range.
type MatchStatus struct {
	LeaderID       *uuid.UUID `json:"leader_id,omitempty"`
	Up             int        `json:"up"`
	HolesPlayed    int        `json:"holes_played"`
	HolesRemaining int        `json:"holes_remaining"`
	Closed         bool       `json:"closed"`
	Result         string     `json:"result,omitempty"`
}

// GameResult is the full output of one scorer: hole-by-hole detail, final
// standings and the pairwise obligations feeding consolidation. Standings
// money always sums to zero across the game's players.
type GameResult struct {
	GameID      uuid.UUID           `json:"game_id"`
	Type        models.GameType     `json:"type"`
	Standings   []Standing          `json:"standings"`
	Holes       []HoleOutcome       `json:"holes,omitempty"`
	Segments    []SegmentResult     `json:"segments,omitempty"`
	Match       *MatchStatus        `json:"match,omitempty"`
	Carryover   Cents               `json:"carryover_cents,omitempty"`
	Obligations []Obligation        `json:"obligations,omitempty"`
}
