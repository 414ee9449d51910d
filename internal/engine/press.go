package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// PressInput is the engine's view of one press record.
type PressInput struct {
	ID            uuid.UUID
	Segment       models.PressSegment
	StartHole     int
	InitiatorID   uuid.UUID
	BetMultiplier int
	State         models.PressState
}

// PressOutcome is a press's terminal state plus the obligation it produced,
// nil for a push.
type PressOutcome struct {
	PressID    uuid.UUID           `json:"press_id"`
	State      models.PressState   `json:"state"`
	Match      MatchStatus         `json:"match"`
	Obligation *Obligation         `json:"obligation,omitempty"`
}

// PressStatus is the live view of an active press during play.
type PressStatus struct {
	PressID   uuid.UUID         `json:"press_id"`
	Segment   models.PressSegment `json:"segment"`
	StartHole int               `json:"start_hole"`
	Match     MatchStatus       `json:"match"`
}

// segmentEnd returns the last hole of a press segment's range.
func segmentEnd(segment models.PressSegment) int {
	if segment == models.SegmentFront {
		return 9
	}
	return 18
}

// EvalPress recomputes the match over exactly the press's hole range. Each
// press in a tree resolves independently of its parent and siblings.
func EvalPress(p PressInput, g Game, holes []Hole) MatchStatus {
	a, b := g.Players[0], g.Players[1]
	// Evaluate from the initiator's perspective.
	if b.ID == p.InitiatorID {
		a, b = b, a
	}
	return matchUp(a, b, g.Players, holes, p.StartHole, segmentEnd(p.Segment))
}

// ResolvePress determines a press's terminal state at finalization: won when
// the initiator is up over the press range, lost when behind, pushed when
// tied or no holes were played. The payout is the parent game's bet times the
// press multiplier, loser to winner. Canceled presses never reach here.
func ResolvePress(p PressInput, g Game, holes []Hole) PressOutcome {
	status := EvalPress(p, g, holes)
	outcome := PressOutcome{PressID: p.ID, Match: status}

	opponentID := g.Players[0].ID
	if opponentID == p.InitiatorID {
		opponentID = g.Players[1].ID
	}

	multiplier := p.BetMultiplier
	if multiplier < 1 {
		multiplier = 1
	}
	amount := g.BetCents * Cents(multiplier)

	switch {
	case status.HolesPlayed == 0 || status.Up == 0:
		outcome.State = models.PressPushed
	case status.Up > 0:
		outcome.State = models.PressWon
		if amount > 0 {
			outcome.Obligation = &Obligation{FromID: opponentID, ToID: p.InitiatorID, Amount: amount}
		}
	default:
		outcome.State = models.PressLost
		if amount > 0 {
			outcome.Obligation = &Obligation{FromID: p.InitiatorID, ToID: opponentID, Amount: amount}
		}
	}
	return outcome
}
