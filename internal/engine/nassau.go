package engine

import (
	"github.com/jkelleher/presspool/internal/models"
)

// nassauRanges maps each Nassau segment to its hole range.
var nassauRanges = []struct {
	segment    models.PressSegment
	start, end int
}{
	{models.SegmentFront, 1, 9},
	{models.SegmentBack, 10, 18},
	{models.SegmentOverall, 1, 18},
}

// scoreNassau settles the classic three-way bet: front nine, back nine and
// overall are independent match play contests at the full bet each. The three
// segment outcomes net between the same two players.
func scoreNassau(g Game, holes []Hole) *GameResult {
	a, b := g.Players[0], g.Players[1]

	result := &GameResult{
		GameID: g.ID,
		Type:   models.GameNassau,
	}

	var moneyA Cents
	for _, r := range nassauRanges {
		status := matchUp(a, b, g.Players, holes, r.start, r.end)
		segment := SegmentResult{
			Segment:     r.segment,
			Margin:      abs(status.Up),
			HolesPlayed: status.HolesPlayed,
		}
		// A segment with no played holes has no winner.
		if status.HolesPlayed > 0 && status.Up != 0 {
			segment.WinnerID = status.LeaderID
			segment.Amount = g.BetCents
			if status.Up > 0 {
				moneyA += g.BetCents
			} else {
				moneyA -= g.BetCents
			}
		}
		result.Segments = append(result.Segments, segment)

		// Overall doubles as the live match status for press tracking.
		if r.segment == models.SegmentOverall {
			s := status
			result.Match = &s
		}
	}

	result.Standings = []Standing{
		{PlayerID: a.ID, Name: a.Name, Money: moneyA},
		{PlayerID: b.ID, Name: b.Name, Money: -moneyA},
	}
	result.Obligations = obligationsFromNet(g.Players, netFromStandings(result.Standings))
	return result
}
