package engine

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// splitCents divides total into n near-equal shares. The first shares absorb
// the remainder cents so the parts always sum back to total. Negative totals
// split symmetrically to positive ones: the magnitude is divided and the sign
// reapplied, so splitCents(-x, n) is the negation of splitCents(x, n).
func splitCents(total Cents, n int) []Cents {
	shares := make([]Cents, n)
	if n == 0 {
		return shares
	}
	sign := Cents(1)
	if total < 0 {
		sign = -1
		total = -total
	}
	q := total / Cents(n)
	r := int(total % Cents(n))
	for i := range shares {
		shares[i] = sign * q
		if i < r {
			shares[i] += sign
		}
	}
	return shares
}

// centsFromPointDiffs converts per-player point differentials (which sum to
// zero) into cents at betCents per point. Largest-remainder rounding keeps the
// cent amounts summing to exactly zero.
func centsFromPointDiffs(diffs []float64, betCents Cents) []Cents {
	raw := make([]float64, len(diffs))
	floors := make([]Cents, len(diffs))
	var floorSum Cents
	for i, d := range diffs {
		raw[i] = d * float64(betCents)
		f := math.Floor(raw[i])
		floors[i] = Cents(f)
		floorSum += Cents(f)
	}

	// The raw values sum to ~0, so -floorSum cents remain to hand out.
	extra := int(-floorSum)
	if extra <= 0 {
		return floors
	}

	order := make([]int, len(diffs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra := raw[order[a]] - math.Floor(raw[order[a]])
		rb := raw[order[b]] - math.Floor(raw[order[b]])
		return ra > rb
	})
	for i := 0; i < extra && i < len(order); i++ {
		floors[order[i]]++
	}
	return floors
}

// obligationsFromNet converts per-player net positions into pairwise
// obligations: each loser's loss is apportioned across the winners in
// proportion to their winnings. When total winnings are zero there is nothing
// to move and no obligation is emitted. Each loser pays out exactly their
// loss; players is the deterministic ordering.
func obligationsFromNet(players []Player, net map[uuid.UUID]Cents) []Obligation {
	var winners, losers []Player
	var totalWon Cents
	for _, p := range players {
		switch {
		case net[p.ID] > 0:
			winners = append(winners, p)
			totalWon += net[p.ID]
		case net[p.ID] < 0:
			losers = append(losers, p)
		}
	}
	if totalWon == 0 {
		return nil
	}

	var obs []Obligation
	for _, loser := range losers {
		loss := -net[loser.ID]
		remaining := loss
		for i, winner := range winners {
			var share Cents
			if i == len(winners)-1 {
				share = remaining
			} else {
				share = loss * net[winner.ID] / totalWon
			}
			if share <= 0 {
				continue
			}
			obs = append(obs, Obligation{FromID: loser.ID, ToID: winner.ID, Amount: share})
			remaining -= share
		}
	}
	return obs
}

// netFromStandings recomputes per-player net positions from standings money.
func netFromStandings(standings []Standing) map[uuid.UUID]Cents {
	net := make(map[uuid.UUID]Cents, len(standings))
	for _, s := range standings {
		net[s.PlayerID] = s.Money
	}
	return net
}
