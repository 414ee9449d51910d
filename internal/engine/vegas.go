package engine

import (
	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// scoreVegas settles a Vegas game: two fixed teams of two. Each hole the
// team's pair of net scores forms a two-digit number, low digit first; the
// lower number wins the difference in points. Money is the accumulated signed
// point differential at the bet per point, split between teammates.
func scoreVegas(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameVegas,
	}

	teamA, teamB := vegasTeams(g)

	pointsA := 0
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

		numA := vegasNumber(teamA, hole, g.Players)
		numB := vegasNumber(teamB, hole, g.Players)
		diff := numB - numA // positive: team A wins the hole
		pointsA += diff
		if diff > 0 {
			id := teamA[0].ID
			outcome.WinnerID = &id
		} else if diff < 0 {
			id := teamB[0].ID
			outcome.WinnerID = &id
		}
		outcome.Value = Cents(abs(diff)) * g.BetCents
		result.Holes = append(result.Holes, outcome)
	}

	teamMoneyA := Cents(pointsA) * g.BetCents
	sharesA := splitCents(teamMoneyA, 2)
	sharesB := splitCents(-teamMoneyA, 2)

	net := make(map[uuid.UUID]Cents, 4)
	for i, p := range teamA {
		net[p.ID] = sharesA[i]
	}
	for i, p := range teamB {
		net[p.ID] = sharesB[i]
	}

	for _, p := range g.Players {
		result.Standings = append(result.Standings, Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Points:   float64(pointsA) * teamSign(teamA, p.ID),
			Money:    net[p.ID],
		})
	}
	result.Obligations = obligationsFromNet(g.Players, net)
	return result
}

// vegasTeams resolves the team pairing from recorded side data, falling back
// to slot order (first two vs last two).
func vegasTeams(g Game) (teamA, teamB []Player) {
	if len(g.VegasTeamA) == 2 && len(g.VegasTeamB) == 2 {
		for _, id := range g.VegasTeamA {
			if p := playerByID(g.Players, id); p != nil {
				teamA = append(teamA, *p)
			}
		}
		for _, id := range g.VegasTeamB {
			if p := playerByID(g.Players, id); p != nil {
				teamB = append(teamB, *p)
			}
		}
		if len(teamA) == 2 && len(teamB) == 2 {
			return teamA, teamB
		}
	}
	return g.Players[:2], g.Players[2:4]
}

// vegasNumber concatenates the team's sorted net scores into one number:
// nets 4 and 5 become 45.
func vegasNumber(team []Player, hole Hole, group []Player) int {
	n0, _ := netScore(team[0], hole, group)
	n1, _ := netScore(team[1], hole, group)
	lo, hi := n0, n1
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo*10 + hi
}

func teamSign(team []Player, id uuid.UUID) float64 {
	for _, p := range team {
		if p.ID == id {
			return 1
		}
	}
	return -1
}
