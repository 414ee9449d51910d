package engine

import (
	"fmt"

	"github.com/jkelleher/presspool/internal/models"
)

// Two-player hole-by-hole match logic. Nassau segments, match play and press
// resolution all reduce to the same evaluation over a hole range.

// matchUp walks the hole range in order and returns the running state: up is
// positive when a leads, negative when b leads. A hole counts only when both
// players have a score; unplayed holes count toward holesRemaining.
func matchUp(a, b Player, group []Player, holes []Hole, startHole, endHole int) MatchStatus {
	status := MatchStatus{}
	up := 0
	for n := startHole; n <= endHole; n++ {
		hole, ok := holeByNumber(holes, n)
		if !ok {
			continue
		}
		netA, okA := netScore(a, hole, group)
		netB, okB := netScore(b, hole, group)
		if !okA || !okB {
			continue
		}
		status.HolesPlayed++
		if netA < netB {
			up++
		} else if netB < netA {
			up--
		}

		// Closed out as soon as the margin exceeds the holes left to play.
		holesAfter := endHole - n
		if !status.Closed && abs(up) > holesAfter {
			status.Closed = true
			if holesAfter > 0 {
				status.Result = fmt.Sprintf("%d & %d", abs(up), holesAfter)
			} else {
				status.Result = fmt.Sprintf("%d up", abs(up))
			}
		}
	}

	status.Up = up
	status.HolesRemaining = (endHole - startHole + 1) - status.HolesPlayed
	if up > 0 {
		id := a.ID
		status.LeaderID = &id
	} else if up < 0 {
		id := b.ID
		status.LeaderID = &id
	}
	return status
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// scoreMatchPlay settles a single 18-hole match between two players. The
// match winner collects the bet; a tied match or one with no played holes
// moves no money.
func scoreMatchPlay(g Game, holes []Hole) *GameResult {
	a, b := g.Players[0], g.Players[1]
	status := matchUp(a, b, g.Players, holes, 1, 18)

	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameMatchPlay,
		Match:  &status,
	}

	segment := SegmentResult{
		Segment:     models.SegmentMatch,
		Margin:      abs(status.Up),
		HolesPlayed: status.HolesPlayed,
	}
	moneyA := Cents(0)
	if status.HolesPlayed > 0 && status.Up != 0 {
		segment.WinnerID = status.LeaderID
		segment.Amount = g.BetCents
		if status.Up > 0 {
			moneyA = g.BetCents
		} else {
			moneyA = -g.BetCents
		}
	}
	result.Segments = []SegmentResult{segment}

	result.Standings = []Standing{
		{PlayerID: a.ID, Name: a.Name, Points: float64(status.Up), Money: moneyA},
		{PlayerID: b.ID, Name: b.Name, Points: float64(-status.Up), Money: -moneyA},
	}
	result.Obligations = obligationsFromNet(g.Players, netFromStandings(result.Standings))
	return result
}
