package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateOffsetsReverseDirections(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	obs := []Obligation{
		{FromID: a, ToID: b, Amount: 1000},
		{FromID: b, ToID: a, Amount: 300},
		{FromID: a, ToID: b, Amount: 200},
	}

	result := Consolidate(obs)
	require.Len(t, result, 1)
	assert.Equal(t, Obligation{FromID: a, ToID: b, Amount: 900}, result[0])
}

func TestConsolidateExactOffsetDisappears(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	obs := []Obligation{
		{FromID: a, ToID: b, Amount: 500},
		{FromID: b, ToID: a, Amount: 500},
	}
	assert.Empty(t, Consolidate(obs))
}

func TestConsolidatePreservesNetPositions(t *testing.T) {
	players := make([]uuid.UUID, 5)
	for i := range players {
		players[i] = uuid.New()
	}
	obs := []Obligation{
		{FromID: players[0], ToID: players[1], Amount: 1200},
		{FromID: players[1], ToID: players[2], Amount: 750},
		{FromID: players[2], ToID: players[0], Amount: 400},
		{FromID: players[3], ToID: players[4], Amount: 825},
		{FromID: players[1], ToID: players[0], Amount: 1100},
		{FromID: players[4], ToID: players[3], Amount: 825},
		{FromID: players[2], ToID: players[1], Amount: 50},
	}

	before := NetPositions(obs)
	consolidated := Consolidate(obs)
	after := NetPositions(consolidated)

	for _, id := range players {
		assert.Equal(t, before[id], after[id], "net position must survive consolidation")
	}

	// Conservation: signed totals sum to zero on both sides.
	var total Cents
	for _, v := range after {
		total += v
	}
	assert.Equal(t, Cents(0), total)

	// At most one settlement per unordered pair, all strictly positive.
	seen := make(map[[2]string]bool)
	for _, ob := range consolidated {
		assert.Greater(t, ob.Amount, Cents(0))
		assert.NotEqual(t, ob.FromID, ob.ToID)
		key := [2]string{ob.FromID.String(), ob.ToID.String()}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		assert.False(t, seen[key], "duplicate pair in consolidated output")
		seen[key] = true
	}
}

func TestConsolidateDropsDegenerateInput(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	obs := []Obligation{
		{FromID: a, ToID: a, Amount: 500}, // self-referential
		{FromID: a, ToID: b, Amount: 0},   // zero amount
	}
	assert.Empty(t, Consolidate(obs))
}

func TestSplitCents(t *testing.T) {
	shares := splitCents(1000, 3)
	assert.Equal(t, []Cents{334, 333, 333}, shares)

	var total Cents
	for _, s := range shares {
		total += s
	}
	assert.Equal(t, Cents(1000), total)
}

func TestSplitCentsNegativeTotal(t *testing.T) {
	// A negative split mirrors the positive one exactly; truncating division
	// toward zero must not swallow the odd cent.
	shares := splitCents(-225, 2)
	assert.Equal(t, []Cents{-113, -112}, shares)

	var total Cents
	for _, s := range shares {
		total += s
	}
	assert.Equal(t, Cents(-225), total)
}

func TestObligationsFromNetSkipsZeroPool(t *testing.T) {
	players := []Player{
		testPlayer("A", nil, nil),
		testPlayer("B", nil, nil),
	}
	net := map[uuid.UUID]Cents{players[0].ID: 0, players[1].ID: 0}
	assert.Empty(t, obligationsFromNet(players, net))
}
