package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// stablefordPoints maps net score relative to par to points.
func stablefordPoints(netToPar int) float64 {
	switch {
	case netToPar <= -3:
		return 5
	case netToPar == -2:
		return 4
	case netToPar == -1:
		return 3
	case netToPar == 0:
		return 2
	case netToPar == 1:
		return 1
	default:
		return 0
	}
}

// scoreStableford settles a Stableford game: points per hole off the fixed
// table, money as each player's points over or under the group average at the
// bet per point. A player simply earns nothing on holes they haven't scored.
func scoreStableford(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameStableford,
	}

	points := make(map[uuid.UUID]float64, len(g.Players))
	var total float64
	for n := 1; n <= 18; n++ {
		hole, ok := holeByNumber(holes, n)
		if !ok {
			continue
		}
		for _, p := range g.Players {
			net, ok := netScore(p, hole, g.Players)
			if !ok {
				continue
			}
			pts := stablefordPoints(net - hole.Par)
			points[p.ID] += pts
			total += pts
		}
	}

	average := total / float64(len(g.Players))
	diffs := make([]float64, len(g.Players))
	for i, p := range g.Players {
		diffs[i] = points[p.ID] - average
	}
	money := centsFromPointDiffs(diffs, g.BetCents)

	net := make(map[uuid.UUID]Cents, len(g.Players))
	for i, p := range g.Players {
		net[p.ID] = money[i]
		result.Standings = append(result.Standings, Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Points:   points[p.ID],
			Money:    money[i],
		})
	}
	result.Obligations = obligationsFromNet(g.Players, net)
	return result
}
