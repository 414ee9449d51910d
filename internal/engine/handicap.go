package engine

// Handicap allowances are relative to the lowest handicap within each game's
// own roster, not the full round: a two-player Nassau inside a larger round
// gets its own baseline. A nil CourseHandicap means the player plays with no
// allowance and is excluded from the baseline.

// minHandicap returns the lowest course handicap among players that have one.
// ok is false when no player in the group carries a handicap.
func minHandicap(players []Player) (int, bool) {
	min, found := 0, false
	for _, p := range players {
		if p.CourseHandicap == nil {
			continue
		}
		if !found || *p.CourseHandicap < min {
			min = *p.CourseHandicap
			found = true
		}
	}
	return min, found
}

// strokesOn returns how many handicap strokes the player receives on the hole,
// relative to the group's baseline. Strokes go to the hardest holes first: a
// hole grants one stroke when its stroke index is within the player's
// handicap difference. At most one stroke per hole.
func strokesOn(p Player, hole Hole, group []Player) int {
	if p.CourseHandicap == nil {
		return 0
	}
	base, ok := minHandicap(group)
	if !ok {
		return 0
	}
	diff := *p.CourseHandicap - base
	if diff <= 0 {
		return 0
	}
	if hole.StrokeIndex <= diff {
		return 1
	}
	return 0
}

// netScore returns the player's net score on the hole: gross strokes minus
// strokes granted. ok is false when the hole has not been played yet.
func netScore(p Player, hole Hole, group []Player) (int, bool) {
	gross, ok := p.Gross(hole.Number)
	if !ok {
		return 0, false
	}
	return gross - strokesOn(p, hole, group), true
}

// holeByNumber finds a hole in the layout, false if the layout is short.
func holeByNumber(holes []Hole, number int) (Hole, bool) {
	for _, h := range holes {
		if h.Number == number {
			return h, true
		}
	}
	return Hole{}, false
}
