package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jkelleher/presspool/internal/models"
)

func TestBankerBeatsField(t *testing.T) {
	// Hole 1: slot 0 banks by rotation, nets 3 against a field best of 4.
	p1 := testPlayer("P1", nil, map[int]int{1: 3})
	p2 := testPlayer("P2", nil, map[int]int{1: 4})
	p3 := testPlayer("P3", nil, map[int]int{1: 5})

	g := Game{Type: models.GameBanker, BetCents: 200, Players: []Player{p1, p2, p3}}
	result := scoreBanker(g, testHoles())

	assert.Equal(t, Cents(400), moneyFor(result, p1.ID), "banker collects from every player")
	assert.Equal(t, Cents(-200), moneyFor(result, p2.ID))
	assert.Equal(t, Cents(-200), moneyFor(result, p3.ID))
	assert.Equal(t, Cents(0), standingsTotal(result))
}

func TestBankerLosesToField(t *testing.T) {
	p1 := testPlayer("P1", nil, map[int]int{1: 5})
	p2 := testPlayer("P2", nil, map[int]int{1: 4})
	p3 := testPlayer("P3", nil, map[int]int{1: 6})

	g := Game{Type: models.GameBanker, BetCents: 200, Players: []Player{p1, p2, p3}}
	result := scoreBanker(g, testHoles())

	assert.Equal(t, Cents(-400), moneyFor(result, p1.ID), "beaten banker pays every player")
	assert.Equal(t, Cents(200), moneyFor(result, p2.ID))
	assert.Equal(t, Cents(200), moneyFor(result, p3.ID))
}

func TestBankerTiePaysNothing(t *testing.T) {
	p1 := testPlayer("P1", nil, map[int]int{1: 4})
	p2 := testPlayer("P2", nil, map[int]int{1: 4})
	p3 := testPlayer("P3", nil, map[int]int{1: 5})

	g := Game{Type: models.GameBanker, BetCents: 200, Players: []Player{p1, p2, p3}}
	result := scoreBanker(g, testHoles())
	assert.Empty(t, result.Obligations)
}

func TestBankerExplicitDecision(t *testing.T) {
	// A recorded decision moves the bank off rotation.
	p1 := testPlayer("P1", nil, map[int]int{1: 4})
	p2 := testPlayer("P2", nil, map[int]int{1: 3})
	p3 := testPlayer("P3", nil, map[int]int{1: 5})

	g := Game{
		Type:            models.GameBanker,
		BetCents:        200,
		Players:         []Player{p1, p2, p3},
		BankerDecisions: []models.BankerDecision{{Hole: 1, BankerID: p2.ID}},
	}
	result := scoreBanker(g, testHoles())

	assert.Equal(t, Cents(400), moneyFor(result, p2.ID))
	assert.Equal(t, Cents(-200), moneyFor(result, p1.ID))
}
