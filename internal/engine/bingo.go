package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreBingo settles Bingo-Bango-Bongo: three externally recorded awards per
// hole (first on the green, closest once all on, first to hole out), one
// point each. Money is points over or under the group's share of the points
// actually awarded, at the bet per point.
func scoreBingo(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameBingo,
	}

	points := make(map[uuid.UUID]float64, len(g.Players))
	var total float64
	award := func(id *uuid.UUID) {
		if id == nil {
			return
		}
		if p := playerByID(g.Players, *id); p != nil {
			points[p.ID]++
			total++
		}
	}
	for _, a := range g.BingoAwards {
		award(a.FirstOnGreen)
		award(a.ClosestToPin)
		award(a.FirstToHole)
	}

	fairShare := total / float64(len(g.Players))
	diffs := make([]float64, len(g.Players))
	for i, p := range g.Players {
		diffs[i] = points[p.ID] - fairShare
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
