package engine

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Consolidate nets a list of pairwise obligations into the minimal equivalent
// set: at most one settlement per unordered player pair, all amounts strictly
// positive, and the signed total per player unchanged. Opposite-direction
// obligations between the same pair offset instead of stacking, so the result
// is zero-sum by construction.
func Consolidate(obligations []Obligation) []Obligation {
	type pair struct {
		first, second uuid.UUID
	}
	net := make(map[pair]Cents)
	order := make([]pair, 0)

	for _, ob := range obligations {
		if ob.Amount == 0 || ob.FromID == ob.ToID {
			continue
		}
		key := pair{first: ob.FromID, second: ob.ToID}
		sign := Cents(1)
		if strings.Compare(ob.ToID.String(), ob.FromID.String()) < 0 {
			key = pair{first: ob.ToID, second: ob.FromID}
			sign = -1
		}
		if _, seen := net[key]; !seen {
			order = append(order, key)
		}
		net[key] += sign * ob.Amount
	}

	sort.Slice(order, func(a, b int) bool {
		if order[a].first != order[b].first {
			return strings.Compare(order[a].first.String(), order[b].first.String()) < 0
		}
		return strings.Compare(order[a].second.String(), order[b].second.String()) < 0
	})

	result := make([]Obligation, 0, len(order))
	for _, key := range order {
		amount := net[key]
		switch {
		case amount > 0:
			result = append(result, Obligation{FromID: key.first, ToID: key.second, Amount: amount})
		case amount < 0:
			result = append(result, Obligation{FromID: key.second, ToID: key.first, Amount: -amount})
		}
	}
	return result
}

// NetPositions folds obligations into a signed position per player: receivers
// positive, payers negative. The values always sum to zero.
func NetPositions(obligations []Obligation) map[uuid.UUID]Cents {
	net := make(map[uuid.UUID]Cents)
	for _, ob := range obligations {
		net[ob.FromID] -= ob.Amount
		net[ob.ToID] += ob.Amount
	}
	return net
}
