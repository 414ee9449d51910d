package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkelleher/presspool/internal/models"
)

func TestBingoAwards(t *testing.T) {
	p1 := testPlayer("P1", nil, nil)
	p2 := testPlayer("P2", nil, nil)
	p3 := testPlayer("P3", nil, nil)

	id1, id2 := p1.ID, p2.ID
	g := Game{
		Type:     models.GameBingo,
		BetCents: 100,
		Players:  []Player{p1, p2, p3},
		BingoAwards: []models.BingoAward{
			{Hole: 1, FirstOnGreen: &id1, ClosestToPin: &id1, FirstToHole: &id2},
			{Hole: 2, FirstOnGreen: &id2, ClosestToPin: &id1},
		},
	}

	result := scoreBingo(g, testHoles())

	assert.Equal(t, 3.0, result.Standings[0].Points)
	assert.Equal(t, 2.0, result.Standings[1].Points)
	assert.Equal(t, 0.0, result.Standings[2].Points)

	// 5 points awarded, fair share 5/3 each.
	assert.Equal(t, Cents(0), standingsTotal(result))
	assert.Greater(t, moneyFor(result, p1.ID), Cents(0))
	assert.Less(t, moneyFor(result, p3.ID), Cents(0))
}

func TestBingoNoAwards(t *testing.T) {
	p1 := testPlayer("P1", nil, nil)
	p2 := testPlayer("P2", nil, nil)

	g := Game{Type: models.GameBingo, BetCents: 100, Players: []Player{p1, p2}}
	result := scoreBingo(g, testHoles())

	assert.Equal(t, Cents(0), moneyFor(result, p1.ID))
	assert.Empty(t, result.Obligations)
}
