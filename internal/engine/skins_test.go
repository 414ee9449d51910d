package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkelleher/presspool/internal/models"
)

func skinsGame(bet Cents, players ...Player) Game {
	return Game{Type: models.GameSkins, BetCents: bet, Players: players}
}

func TestSkinsCarryover(t *testing.T) {
	// $5 per hole, 4 players. Holes 1 and 2 have outright winners, hole 3 is
	// a two-way tie for low, hole 4 has a sole winner who also collects the
	// carried pot.
	p1 := testPlayer("P1", nil, map[int]int{1: 3, 2: 4, 3: 4, 4: 4})
	p2 := testPlayer("P2", nil, map[int]int{1: 4, 2: 3, 3: 4, 4: 5})
	p3 := testPlayer("P3", nil, map[int]int{1: 4, 2: 4, 3: 5, 4: 3})
	p4 := testPlayer("P4", nil, map[int]int{1: 5, 2: 5, 3: 5, 4: 5})

	result := scoreSkins(skinsGame(500, p1, p2, p3, p4), testHoles())

	require.NotNil(t, result.Holes[0].WinnerID)
	assert.Equal(t, p1.ID, *result.Holes[0].WinnerID)
	assert.Equal(t, Cents(500), result.Holes[0].Value)

	assert.Nil(t, result.Holes[2].WinnerID, "two-way tie for low carries the pot")
	assert.True(t, result.Holes[2].Carried)

	require.NotNil(t, result.Holes[3].WinnerID)
	assert.Equal(t, p3.ID, *result.Holes[3].WinnerID)
	assert.Equal(t, Cents(1000), result.Holes[3].Value, "hole 4 pays its own bet plus hole 3's carry")

	assert.Equal(t, Cents(0), standingsTotal(result))
}

func TestSkinsPotConservation(t *testing.T) {
	p1 := testPlayer("P1", nil, map[int]int{1: 3, 2: 4, 5: 4})
	p2 := testPlayer("P2", nil, map[int]int{1: 4, 2: 4, 5: 5})

	result := scoreSkins(skinsGame(500, p1, p2), testHoles())

	var awarded Cents
	for _, h := range result.Holes {
		awarded += h.Value
	}
	assert.Equal(t, Cents(18*500), awarded+result.Carryover,
		"pots awarded plus final carryover account for every hole's bet")
	assert.Equal(t, Cents(0), standingsTotal(result))
}

func TestSkinsUnscoredHolesCarry(t *testing.T) {
	p1 := testPlayer("P1", nil, map[int]int{3: 4})
	p2 := testPlayer("P2", nil, map[int]int{3: 5})

	result := scoreSkins(skinsGame(100, p1, p2), testHoles())

	// Holes 1-2 were never played; their bets ride into hole 3's pot.
	assert.True(t, result.Holes[0].Skipped)
	assert.Equal(t, Cents(300), result.Holes[2].Value)
	assert.Equal(t, Cents(300), moneyFor(result, p1.ID))
	assert.Equal(t, Cents(-300), moneyFor(result, p2.ID))
}

func TestSkinsPaymentSplit(t *testing.T) {
	// One skin among four players: the three losers split the pot payment.
	p1 := testPlayer("P1", nil, map[int]int{1: 3})
	p2 := testPlayer("P2", nil, map[int]int{1: 4})
	p3 := testPlayer("P3", nil, map[int]int{1: 4})
	p4 := testPlayer("P4", nil, map[int]int{1: 4})

	result := scoreSkins(skinsGame(300, p1, p2, p3, p4), testHoles())

	assert.Equal(t, Cents(300), moneyFor(result, p1.ID))
	assert.Equal(t, Cents(-100), moneyFor(result, p2.ID))
	assert.Equal(t, Cents(-100), moneyFor(result, p3.ID))
	assert.Equal(t, Cents(-100), moneyFor(result, p4.ID))
	assert.Equal(t, Cents(0), standingsTotal(result))
}
