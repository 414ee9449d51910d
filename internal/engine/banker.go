package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreBanker settles a Banker game: one player banks each hole (rotating by
// tee order unless a recorded decision names one) and plays their net score
// against the best net among the rest. Beat the best and everyone pays the
// banker; lose to it and the banker pays everyone. Ties move nothing.
func scoreBanker(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameBanker,
	}

	decisions := make(map[int]models.BankerDecision, len(g.BankerDecisions))
	for _, d := range g.BankerDecisions {
		decisions[d.Hole] = d
	}

	net := make(map[uuid.UUID]Cents, len(g.Players))
	for n := 1; n <= 18; n++ {
		hole, ok := holeByNumber(holes, n)
		if !ok {
			continue
		}
		outcome := HoleOutcome{Hole: n}
		if !allScored(g.Players, n) {
			outcome.Skipped = true
			result.Holes = append(result.Holes, outcome)
			continue
		}

		banker := &g.Players[rotationIndex(n, len(g.Players))]
		if d, ok := decisions[n]; ok {
			if p := playerByID(g.Players, d.BankerID); p != nil {
				banker = p
			}
		}

		bankerNet, _ := netScore(*banker, hole, g.Players)
		fieldBest := 0
		first := true
		for _, p := range g.Players {
			if p.ID == banker.ID {
				continue
			}
			pn, _ := netScore(p, hole, g.Players)
			if first || pn < fieldBest {
				fieldBest = pn
				first = false
			}
		}

		switch {
		case bankerNet < fieldBest:
			for _, p := range g.Players {
				if p.ID == banker.ID {
					continue
				}
				net[p.ID] -= g.BetCents
				net[banker.ID] += g.BetCents
			}
			id := banker.ID
			outcome.WinnerID = &id
			outcome.Value = g.BetCents * Cents(len(g.Players)-1)
		case bankerNet > fieldBest:
			for _, p := range g.Players {
				if p.ID == banker.ID {
					continue
				}
				net[p.ID] += g.BetCents
				net[banker.ID] -= g.BetCents
			}
			outcome.Value = g.BetCents * Cents(len(g.Players)-1)
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
