package engine

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jkelleher/presspool/internal/models"
)

// ninesSlots is the per-hole point distribution keyed by group size. Nine
// points go out every hole; players tied for a rank split the sum of the
// slots they occupy.
var ninesSlots = map[int][]float64{
	2: {6, 3},
	3: {5, 3, 1},
	4: {5, 3, 1, 0},
}

// scoreNines settles a Nines (9-point) game for three or four players. Money
// is each player's points over or under their share of the pool, at the bet
// per point.
func scoreNines(g Game, holes []Hole) *GameResult {
	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameNines,
	}
	slots := ninesSlots[len(g.Players)]

	points := make(map[uuid.UUID]float64, len(g.Players))
	var totalPoints float64
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

		holePoints := distributeSlots(g.Players, hole, slots)
		for id, pts := range holePoints {
			points[id] += pts
			totalPoints += pts
		}
		if w := soleLowest(g.Players, hole); w != nil {
			id := w.ID
			outcome.WinnerID = &id
		}
		result.Holes = append(result.Holes, outcome)
	}

	diffs := make([]float64, len(g.Players))
	fairShare := totalPoints / float64(len(g.Players))
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

// distributeSlots ranks the group by net score and hands out slot points,
// splitting evenly across ties.
func distributeSlots(players []Player, hole Hole, slots []float64) map[uuid.UUID]float64 {
	type entry struct {
		id  uuid.UUID
		net int
	}
	entries := make([]entry, 0, len(players))
	for _, p := range players {
		n, _ := netScore(p, hole, players)
		entries = append(entries, entry{id: p.ID, net: n})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].net < entries[b].net
	})

	points := make(map[uuid.UUID]float64, len(players))
	i := 0
	for i < len(entries) {
		j := i
		for j < len(entries) && entries[j].net == entries[i].net {
			j++
		}
		// Tied block occupies slots i..j-1 and splits their sum.
		var sum float64
		for k := i; k < j; k++ {
			sum += slots[k]
		}
		share := sum / float64(j-i)
		for k := i; k < j; k++ {
			points[entries[k].id] = share
		}
		i = j
	}
	return points
}

// soleLowest returns the outright low-net player on the hole, nil on a tie.
func soleLowest(players []Player, hole Hole) *Player {
	var winner *Player
	best := 0
	tied := false
	for i := range players {
		n, ok := netScore(players[i], hole, players)
		if !ok {
			return nil
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
		return nil
	}
	return winner
}
