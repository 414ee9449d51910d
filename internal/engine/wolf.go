package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreWolf settles a four-player Wolf game. The wolf rotates by tee order
// unless a recorded decision names one; the wolf either picks a partner
// (two-on-two at the base stake) or goes alone (one-on-three at triple
// stake). Each side scores its best ball; ties move nothing.
func scoreWolf(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameWolf,
	}

	decisions := make(map[int]models.WolfDecision, len(g.WolfDecisions))
	for _, d := range g.WolfDecisions {
		decisions[d.Hole] = d
	}

	net := make(map[uuid.UUID]Cents, len(g.Players))
	for n := 1; n <= 18; n++ {
		hole, ok := holeByNumber(holes, n)
		if !ok {
			continue
		}
		outcome := HoleOutcome{Hole: n}

		// Every player must have scored for the hole to count.
		if !allScored(g.Players, n) {
			outcome.Skipped = true
			result.Holes = append(result.Holes, outcome)
			continue
		}

		wolf := &g.Players[rotationIndex(n, len(g.Players))]
		var partner *Player
		if d, ok := decisions[n]; ok {
			if d.WolfID != nil {
				if p := playerByID(g.Players, *d.WolfID); p != nil {
					wolf = p
				}
			}
			if !d.LoneWolf && d.PartnerID != nil {
				partner = playerByID(g.Players, *d.PartnerID)
			}
		}

		wolfSide := []Player{*wolf}
		if partner != nil && partner.ID != wolf.ID {
			wolfSide = append(wolfSide, *partner)
		}
		var fieldSide []Player
		for _, p := range g.Players {
			if p.ID == wolf.ID || (partner != nil && p.ID == partner.ID) {
				continue
			}
			fieldSide = append(fieldSide, p)
		}

		wolfBall := bestBall(wolfSide, hole, g.Players)
		fieldBall := bestBall(fieldSide, hole, g.Players)
		if wolfBall == fieldBall {
			result.Holes = append(result.Holes, outcome)
			continue
		}

		wolfWins := wolfBall < fieldBall
		if len(wolfSide) == 1 {
			// Lone wolf: stake is tripled since the wolf takes on the field.
			stake := g.BetCents * Cents(len(fieldSide))
			if wolfWins {
				net[wolf.ID] += stake
				for _, p := range fieldSide {
					net[p.ID] -= g.BetCents
				}
				id := wolf.ID
				outcome.WinnerID = &id
			} else {
				net[wolf.ID] -= stake
				for _, p := range fieldSide {
					net[p.ID] += g.BetCents
				}
			}
			outcome.Value = stake
		} else {
			winners, losers := wolfSide, fieldSide
			if !wolfWins {
				winners, losers = fieldSide, wolfSide
			}
			for _, p := range winners {
				net[p.ID] += g.BetCents
			}
			for _, p := range losers {
				net[p.ID] -= g.BetCents
			}
			outcome.Value = g.BetCents
			if wolfWins {
				id := wolf.ID
				outcome.WinnerID = &id
			}
		}
		result.Holes = append(result.Holes, outcome)
	}

	for _, p := range g.Players {
		result.Standings = append(result.Standings, Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Money:    net[p.ID],
		})
	}
	result.Obligations = obligationsFromNet(g.Players, net)
	return result
}

// bestBall returns the lowest net score on the side. Callers ensure every
// member has scored the hole.
func bestBall(side []Player, hole Hole, group []Player) int {
	best := 0
	for i, p := range side {
		n, _ := netScore(p, hole, group)
		if i == 0 || n < best {
			best = n
		}
	}
	return best
}

// allScored reports whether every player has a stroke count for the hole.
func allScored(players []Player, holeNumber int) bool {
	for _, p := range players {
		if _, ok := p.Gross(holeNumber); !ok {
			return false
		}
	}
	return true
}
