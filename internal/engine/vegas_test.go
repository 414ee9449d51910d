package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jkelleher/presspool/internal/models"
)

func TestVegasNumbers(t *testing.T) {
	a1 := testPlayer("A1", nil, map[int]int{1: 4})
	a2 := testPlayer("A2", nil, map[int]int{1: 5})
	b1 := testPlayer("B1", nil, map[int]int{1: 3})
	b2 := testPlayer("B2", nil, map[int]int{1: 6})

	g := Game{Type: models.GameVegas, BetCents: 100, Players: []Player{a1, a2, b1, b2}}
	result := scoreVegas(g, testHoles())

	// Team A's nets 4,5 make 45; team B's 3,6 make 36. B wins by 9 points.
	assert.Equal(t, Cents(-450), moneyFor(result, a1.ID))
	assert.Equal(t, Cents(-450), moneyFor(result, a2.ID))
	assert.Equal(t, Cents(450), moneyFor(result, b1.ID))
	assert.Equal(t, Cents(450), moneyFor(result, b2.ID))
	assert.Equal(t, Cents(0), standingsTotal(result))

	assert.Equal(t, b1.ID, *result.Holes[0].WinnerID)
	assert.Equal(t, Cents(900), result.Holes[0].Value)
}

func TestVegasOddTeamMoneyStaysZeroSum(t *testing.T) {
	// At a 25 cent bet the 9-point swing makes 225 cents per team, which
	// cannot split evenly. The odd cent lands on the first teammate on both
	// sides so the standings still sum to zero.
	a1 := testPlayer("A1", nil, map[int]int{1: 4})
	a2 := testPlayer("A2", nil, map[int]int{1: 5})
	b1 := testPlayer("B1", nil, map[int]int{1: 3})
	b2 := testPlayer("B2", nil, map[int]int{1: 6})

	g := Game{Type: models.GameVegas, BetCents: 25, Players: []Player{a1, a2, b1, b2}}
	result := scoreVegas(g, testHoles())

	assert.Equal(t, Cents(-113), moneyFor(result, a1.ID))
	assert.Equal(t, Cents(-112), moneyFor(result, a2.ID))
	assert.Equal(t, Cents(113), moneyFor(result, b1.ID))
	assert.Equal(t, Cents(112), moneyFor(result, b2.ID))
	assert.Equal(t, Cents(0), standingsTotal(result))
}

func TestVegasAccumulatesAcrossHoles(t *testing.T) {
	// Hole 1: A's 44 beats B's 45 by 1. Hole 2: B's 34 beats A's 45 by 11.
	a1 := testPlayer("A1", nil, map[int]int{1: 4, 2: 4})
	a2 := testPlayer("A2", nil, map[int]int{1: 4, 2: 5})
	b1 := testPlayer("B1", nil, map[int]int{1: 4, 2: 3})
	b2 := testPlayer("B2", nil, map[int]int{1: 5, 2: 4})

	g := Game{Type: models.GameVegas, BetCents: 100, Players: []Player{a1, a2, b1, b2}}
	result := scoreVegas(g, testHoles())

	// Net differential: +1 for A on hole 1, -11 on hole 2 = -10 points.
	assert.Equal(t, Cents(-500), moneyFor(result, a1.ID))
	assert.Equal(t, Cents(500), moneyFor(result, b1.ID))
}

func TestVegasExplicitTeams(t *testing.T) {
	p1 := testPlayer("P1", nil, map[int]int{1: 4})
	p2 := testPlayer("P2", nil, map[int]int{1: 5})
	p3 := testPlayer("P3", nil, map[int]int{1: 4})
	p4 := testPlayer("P4", nil, map[int]int{1: 6})

	// Cross-pair the teams instead of using slot order: p1+p3 vs p2+p4.
	g := Game{
		Type:       models.GameVegas,
		BetCents:   100,
		Players:    []Player{p1, p2, p3, p4},
		VegasTeamA: []uuid.UUID{p1.ID, p3.ID},
		VegasTeamB: []uuid.UUID{p2.ID, p4.ID},
	}
	result := scoreVegas(g, testHoles())

	// 44 vs 56: team A wins 12 points, $12 at $1/point, $6 per teammate.
	assert.Equal(t, Cents(600), moneyFor(result, p1.ID))
	assert.Equal(t, Cents(600), moneyFor(result, p3.ID))
	assert.Equal(t, Cents(-600), moneyFor(result, p2.ID))
	assert.Equal(t, Cents(-600), moneyFor(result, p4.ID))
}
