package engine

import (
	"github.com/google/uuid"
)

// testHoles builds a standard par-4 layout where stroke index equals hole
// number (hole 1 hardest).
func testHoles() []Hole {
	holes := make([]Hole, 18)
	for i := range holes {
		holes[i] = Hole{Number: i + 1, Par: 4, StrokeIndex: i + 1}
	}
	return holes
}

func intPtr(n int) *int {
	return &n
}

// testPlayer builds a player with gross strokes keyed by hole number. Holes
// absent from the map are unplayed.
func testPlayer(name string, handicap *int, strokes map[int]int) Player {
	p := Player{
		ID:             uuid.New(),
		Name:           name,
		CourseHandicap: handicap,
		Scores:         make(map[int]Score, len(strokes)),
	}
	for hole, s := range strokes {
		v := s
		p.Scores[hole] = Score{Strokes: &v}
	}
	return p
}

// evenStrokes fills all 18 holes with the same gross score.
func evenStrokes(strokes int) map[int]int {
	m := make(map[int]int, 18)
	for n := 1; n <= 18; n++ {
		m[n] = strokes
	}
	return m
}

// withPutts attaches putt counts to an existing player's scored holes.
func withPutts(p Player, putts map[int]int) Player {
	for hole, count := range putts {
		v := count
		s := p.Scores[hole]
		s.Putts = &v
		p.Scores[hole] = s
	}
	return p
}

// standingsTotal sums standings money, which must always be zero.
func standingsTotal(result *GameResult) Cents {
	var total Cents
	for _, s := range result.Standings {
		total += s.Money
	}
	return total
}

// moneyFor returns a player's standings money in a result.
func moneyFor(result *GameResult, id uuid.UUID) Cents {
	for _, s := range result.Standings {
		if s.PlayerID == id {
			return s.Money
		}
	}
	return 0
}
