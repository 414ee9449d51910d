package engine

import (
	"fmt"

	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/utils"
)

// playerLimits is the roster size table per game type. A max of 0 means the
// game takes any group of at least min players.
var playerLimits = map[models.GameType]struct{ min, max int }{
	models.GameNassau:     {2, 2},
	models.GameMatchPlay:  {2, 2},
	models.GameVegas:      {4, 4},
	models.GameWolf:       {4, 4},
	models.GameNines:      {3, 4},
	models.GameSkins:      {2, 16},
	models.GameStableford: {2, 16},
	models.GameSnake:      {2, 0},
	models.GameBanker:     {2, 0},
	models.GameBingo:      {2, 0},
}

// ValidateGame checks a single game's configuration before any scorer runs.
func ValidateGame(g Game, maxBet Cents) *utils.AppError {
	limits, ok := playerLimits[g.Type]
	if !ok {
		return utils.NewAppError(utils.ErrCodeGameConfig,
			fmt.Sprintf("unknown game type %q", g.Type))
	}
	if n := len(g.Players); n < limits.min || (limits.max > 0 && n > limits.max) {
		want := fmt.Sprintf("%d-%d", limits.min, limits.max)
		if limits.max == 0 {
			want = fmt.Sprintf("at least %d", limits.min)
		}
		return utils.NewAppError(utils.ErrCodeGameConfig,
			fmt.Sprintf("%s requires %s players, got %d", g.Type, want, n))
	}
	if g.BetCents < 0 {
		return utils.NewAppError(utils.ErrCodeGameConfig, "bet amount cannot be negative")
	}
	if maxBet > 0 && g.BetCents > maxBet {
		return utils.NewAppError(utils.ErrCodeBetLimit,
			fmt.Sprintf("bet amount %d exceeds limit %d", g.BetCents, maxBet))
	}

	if g.Type == models.GameVegas && (len(g.VegasTeamA) != 0 || len(g.VegasTeamB) != 0) {
		if len(g.VegasTeamA) != 2 || len(g.VegasTeamB) != 2 {
			return utils.NewAppError(utils.ErrCodeGameConfig, "vegas teams must have exactly 2 players each")
		}
		for _, id := range append(append([]string{},
			g.VegasTeamA[0].String(), g.VegasTeamA[1].String()),
			g.VegasTeamB[0].String(), g.VegasTeamB[1].String()) {
			found := false
			for _, p := range g.Players {
				if p.ID.String() == id {
					found = true
					break
				}
			}
			if !found {
				return utils.NewAppError(utils.ErrCodeGameConfig, "vegas team member is not in the game")
			}
		}
	}
	return nil
}

// ValidateGames checks every game in a round, including the one-game-per-type
// rule.
func ValidateGames(games []Game, maxBet Cents) *utils.AppError {
	seen := make(map[models.GameType]bool, len(games))
	for _, g := range games {
		if seen[g.Type] {
			return utils.NewAppError(utils.ErrCodeGameConfig,
				fmt.Sprintf("duplicate game type %q in round", g.Type))
		}
		seen[g.Type] = true
		if appErr := ValidateGame(g, maxBet); appErr != nil {
			return appErr
		}
	}
	return nil
}
