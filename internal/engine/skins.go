package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreSkins settles a skins pool: each hole is worth the bet plus whatever
// carried from tied holes before it. A skin needs a strictly lowest net score;
// a tie (or a hole missing scores) rolls the pot forward. The skin winner
// collects the pot split evenly from the rest of the field. The sum of pots
// awarded plus the final carryover always equals bet x 18.
func scoreSkins(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameSkins,
	}

	net := make(map[uuid.UUID]Cents, len(g.Players))
	for _, p := range g.Players {
		net[p.ID] = 0
	}

	var carry Cents
	for n := 1; n <= 18; n++ {
		hole, ok := holeByNumber(holes, n)
		if !ok {
			continue
		}
		pot := g.BetCents + carry
		outcome := HoleOutcome{Hole: n}

		winner, contested := skinsWinner(g.Players, hole)
		switch {
		case !contested:
			// Missing scores: nobody can win the hole, the pot rides.
			carry = pot
			outcome.Skipped = true
			outcome.Carried = true
		case winner == nil:
			carry = pot
			outcome.Carried = true
		default:
			id := winner.ID
			outcome.WinnerID = &id
			outcome.Value = pot
			carry = 0

			// Pot comes evenly from the other players.
			shares := splitCents(pot, len(g.Players)-1)
			i := 0
			for _, p := range g.Players {
				if p.ID == id {
					continue
				}
				net[p.ID] -= shares[i]
				net[id] += shares[i]
				i++
			}
		}
		result.Holes = append(result.Holes, outcome)
	}
	result.Carryover = carry

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

// skinsWinner returns the sole lowest-net player on the hole. winner is nil on
// a tie for low; contested is false when any participant has no score yet.
func skinsWinner(players []Player, hole Hole) (winner *Player, contested bool) {
	best := 0
	tied := false
	for i := range players {
		n, ok := netScore(players[i], hole, players)
		if !ok {
			return nil, false
		}
		if winner == nil || n < best {
			winner = &players[i]
			best = n
			tied = false
		} else if n == best {
			tied = true
		}
	}
	if tied {
		return nil, true
	}
	return winner, true
}
