package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jkelleher/presspool/internal/engine"
	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/database"
	"github.com/jkelleher/presspool/pkg/utils"
)

// Finalizer closes out a round: it resolves every active press, consolidates
// all game and press obligations into settlements, and flips the round to
// completed. The whole operation is idempotent; a round finalizes at most
// once no matter how many concurrent requests race.
type Finalizer struct {
	db     *database.DB
	calc   *RoundCalculator
	logger *logrus.Logger
}

func NewFinalizer(db *database.DB, calc *RoundCalculator, logger *logrus.Logger) *Finalizer {
	return &Finalizer{db: db, calc: calc, logger: logger}
}

// FinalizeResult reports what finalization produced.
type FinalizeResult struct {
	RoundID     uuid.UUID              `json:"round_id"`
	FinalizedAt time.Time              `json:"finalized_at"`
	Settlements []models.Settlement    `json:"settlements"`
	Presses     []engine.PressOutcome  `json:"presses,omitempty"`
	Games       []*engine.GameResult   `json:"games"`
}

// FinalizeRound computes and persists a round's settlements.
//
// All scoring happens outside the transaction; the transaction only persists
// the outcome. The round status update is guarded on the current status, so
// if two requests race, exactly one sees a row change and commits. The loser
// gets ErrRoundFinalized, same as any later retry.
func (f *Finalizer) FinalizeRound(ctx context.Context, roundID uuid.UUID) (*FinalizeResult, error) {
	snap, err := f.calc.loadSnapshot(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if snap.round.Status == models.RoundCompleted {
		return nil, utils.ErrRoundFinalized
	}

	var existing int64
	if err := f.db.WithContext(ctx).Model(&models.Settlement{}).
		Where("round_id = ?", roundID).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing settlements: %w", err)
	}
	if existing > 0 {
		return nil, utils.ErrSettlementsExist
	}

	if appErr := engine.ValidateGames(snap.games, f.calc.maxBet); appErr != nil {
		return nil, appErr
	}

	result := &FinalizeResult{
		RoundID:     roundID,
		FinalizedAt: time.Now().UTC(),
	}

	var obligations []engine.Obligation
	for _, g := range snap.games {
		gr, err := engine.ScoreGame(g, snap.holes)
		if err != nil {
			return nil, err
		}
		result.Games = append(result.Games, gr)
		obligations = append(obligations, gr.Obligations...)

		for _, p := range snap.presses[g.ID] {
			if p.State != models.PressActive {
				continue
			}
			outcome := engine.ResolvePress(pressInput(p), g, snap.holes)
			result.Presses = append(result.Presses, outcome)
			if outcome.Obligation != nil {
				obligations = append(obligations, *outcome.Obligation)
			}
		}
	}

	settlements := make([]models.Settlement, 0)
	for _, ob := range engine.Consolidate(obligations) {
		settlements = append(settlements, models.Settlement{
			RoundID:      roundID,
			FromPlayerID: ob.FromID,
			ToPlayerID:   ob.ToID,
			AmountCents:  int64(ob.Amount),
			Status:       models.SettlementPending,
		})
	}

	err = f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Round{}).
			Where("id = ? AND status <> ?", roundID, models.RoundCompleted).
			Updates(map[string]interface{}{
				"status":       models.RoundCompleted,
				"finalized_at": result.FinalizedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update round status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return utils.ErrRoundFinalized
		}

		for _, outcome := range result.Presses {
			res := tx.Model(&models.Press{}).
				Where("id = ? AND state = ?", outcome.PressID, models.PressActive).
				Update("state", outcome.State)
			if res.Error != nil {
				return fmt.Errorf("failed to resolve press %s: %w", outcome.PressID, res.Error)
			}
		}

		if len(settlements) > 0 {
			if err := tx.Create(&settlements).Error; err != nil {
				return fmt.Errorf("failed to create settlements: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Settlements = settlements
	f.calc.InvalidateResults(ctx, roundID)

	f.logger.WithFields(logrus.Fields{
		"round_id":    roundID,
		"settlements": len(settlements),
		"presses":     len(result.Presses),
	}).Info("Round finalized")
	return result, nil
}
