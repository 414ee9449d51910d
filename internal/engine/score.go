package engine

import (
	"fmt"

	"github.com/jkelleher/presspool/internal/models"
)

// ScoreGame dispatches a validated game to its scoring rule. Every scorer is
// a total function over partially played rounds: holes missing required
// scores are excluded, never errors.
func ScoreGame(g Game, holes []Hole) (*GameResult, error) {
	switch g.Type {
	case models.GameNassau:
		return scoreNassau(g, holes), nil
	case models.GameMatchPlay:
		return scoreMatchPlay(g, holes), nil
	case models.GameSkins:
		return scoreSkins(g, holes), nil
	case models.GameWolf:
		return scoreWolf(g, holes), nil
	case models.GameNines:
		return scoreNines(g, holes), nil
	case models.GameStableford:
		return scoreStableford(g, holes), nil
	case models.GameVegas:
		return scoreVegas(g, holes), nil
	case models.GameSnake:
		return scoreSnake(g, holes), nil
	case models.GameBanker:
		return scoreBanker(g, holes), nil
	case models.GameBingo:
		return scoreBingo(g, holes), nil
	default:
		return nil, fmt.Errorf("unknown game type %q", g.Type)
	}
}
