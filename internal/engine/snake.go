package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreSnake settles the three-putt snake: whoever most recently three-putted
// holds the snake, and the holder at the end of the round pays the bet to
// every other player. Holes without recorded putts can't pass the snake.
func scoreSnake(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameSnake,
	}

	var holder *uuid.UUID
	for n := 1; n <= 18; n++ {
		// Within a hole, tee order breaks ties: the later player takes it.
		for _, p := range g.Players {
			putts, ok := p.PuttCount(n)
			if !ok || putts < 3 {
				continue
			}
			id := p.ID
			holder = &id
		}
		if holder != nil {
			result.Holes = append(result.Holes, HoleOutcome{Hole: n, WinnerID: holder})
		}
	}

	net := make(map[uuid.UUID]Cents, len(g.Players))
	if holder != nil {
		for _, p := range g.Players {
			if p.ID == *holder {
				net[p.ID] = -g.BetCents * Cents(len(g.Players)-1)
			} else {
				net[p.ID] = g.BetCents
			}
		}
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
