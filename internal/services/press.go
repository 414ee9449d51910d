package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/database"
	"github.com/jkelleher/presspool/pkg/utils"
)

// PressService opens and cancels presses. Resolution is the finalizer's job;
// this service only manages the active side of the lifecycle.
type PressService struct {
	db     *database.DB
	calc   *RoundCalculator
	logger *logrus.Logger
}

func NewPressService(db *database.DB, calc *RoundCalculator, logger *logrus.Logger) *PressService {
	return &PressService{db: db, calc: calc, logger: logger}
}

// OpenPressRequest carries the parameters for a new press.
type OpenPressRequest struct {
	GameID        uuid.UUID           `json:"game_id" binding:"required"`
	Segment       models.PressSegment `json:"segment" binding:"required"`
	StartHole     int                 `json:"start_hole" binding:"required"`
	ParentPressID *uuid.UUID          `json:"parent_press_id,omitempty"`
	BetMultiplier int                 `json:"bet_multiplier,omitempty"`
}

// OpenPress creates a press on a two-player match game. Only Nassau and match
// play games accept presses, only while the round is in progress, and only
// from a player in the game. A re-press must name an active parent on the
// same game; its range nests inside the parent's segment.
func (s *PressService) OpenPress(ctx context.Context, userID, roundID uuid.UUID, req OpenPressRequest) (*models.Press, error) {
	var game models.Game
	err := s.db.WithContext(ctx).Preload("Players").First(&game, "id = ?", req.GameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if game.RoundID != roundID {
		return nil, utils.ErrNotFound
	}

	if game.Type != models.GameNassau && game.Type != models.GameMatchPlay {
		return nil, utils.NewAppError(utils.ErrCodePressState,
			fmt.Sprintf("presses are not supported on %s games", game.Type))
	}

	var round models.Round
	if err := s.db.WithContext(ctx).First(&round, "id = ?", game.RoundID).Error; err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}
	if round.Status == models.RoundCompleted {
		return nil, utils.ErrRoundFinalized
	}

	initiator, ok := s.rosterEntry(ctx, round.ID, userID)
	if !ok {
		return nil, utils.ErrForbidden
	}
	inGame := false
	for _, gp := range game.Players {
		if gp.PlayerID == initiator.ID {
			inGame = true
			break
		}
	}
	if !inGame {
		return nil, utils.ErrForbidden
	}

	if err := validatePressRange(game.Type, req.Segment, req.StartHole); err != nil {
		return nil, err
	}

	if req.ParentPressID != nil {
		var parent models.Press
		if err := s.db.WithContext(ctx).First(&parent, "id = ?", *req.ParentPressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.ErrNotFound
			}
			return nil, fmt.Errorf("failed to load parent press: %w", err)
		}
		if parent.GameID != game.ID {
			return nil, utils.NewAppError(utils.ErrCodePressState, "parent press belongs to a different game")
		}
		if parent.IsTerminal() {
			return nil, utils.ErrPressNotActive
		}
		if req.StartHole <= parent.StartHole {
			return nil, utils.NewAppError(utils.ErrCodePressState, "a re-press must start after its parent")
		}
	}

	multiplier := req.BetMultiplier
	if multiplier < 1 {
		multiplier = 1
	}

	press := &models.Press{
		GameID:        game.ID,
		Segment:       req.Segment,
		StartHole:     req.StartHole,
		InitiatorID:   initiator.ID,
		ParentPressID: req.ParentPressID,
		BetMultiplier: multiplier,
		State:         models.PressActive,
	}
	if err := s.db.WithContext(ctx).Create(press).Error; err != nil {
		return nil, fmt.Errorf("failed to create press: %w", err)
	}

	s.calc.InvalidateResults(ctx, round.ID)
	s.logger.WithFields(logrus.Fields{
		"press_id":   press.ID,
		"game_id":    game.ID,
		"segment":    press.Segment,
		"start_hole": press.StartHole,
	}).Info("Press opened")
	return press, nil
}

// CancelPress voids an active press. Only the initiator or the round's
// creator may cancel, and only before the press resolves.
func (s *PressService) CancelPress(ctx context.Context, userID uuid.UUID, pressID uuid.UUID) (*models.Press, error) {
	var press models.Press
	err := s.db.WithContext(ctx).First(&press, "id = ?", pressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load press: %w", err)
	}
	if press.IsTerminal() {
		return nil, utils.ErrPressNotActive
	}

	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, "id = ?", press.GameID).Error; err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	var round models.Round
	if err := s.db.WithContext(ctx).First(&round, "id = ?", game.RoundID).Error; err != nil {
		return nil, fmt.Errorf("failed to load round: %w", err)
	}
	if round.Status == models.RoundCompleted {
		return nil, utils.ErrRoundFinalized
	}

	allowed := round.CreatedBy == userID
	if !allowed {
		if entry, ok := s.rosterEntry(ctx, round.ID, userID); ok && entry.ID == press.InitiatorID {
			allowed = true
		}
	}
	if !allowed {
		return nil, utils.ErrForbidden
	}

	res := s.db.WithContext(ctx).Model(&models.Press{}).
		Where("id = ? AND state = ?", pressID, models.PressActive).
		Update("state", models.PressCanceled)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to cancel press: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrPressNotActive
	}

	press.State = models.PressCanceled
	s.calc.InvalidateResults(ctx, round.ID)
	s.logger.WithField("press_id", pressID).Info("Press canceled")
	return &press, nil
}

// rosterEntry looks up the round_players row for a user in a round.
func (s *PressService) rosterEntry(ctx context.Context, roundID, userID uuid.UUID) (*models.RoundPlayer, bool) {
	var entry models.RoundPlayer
	err := s.db.WithContext(ctx).
		First(&entry, "round_id = ? AND user_id = ?", roundID, userID).Error
	if err != nil {
		return nil, false
	}
	return &entry, true
}

// validatePressRange checks that the segment fits the game type and the start
// hole lies inside the segment's hole range.
func validatePressRange(gameType models.GameType, segment models.PressSegment, startHole int) error {
	var lo, hi int
	switch segment {
	case models.SegmentFront:
		lo, hi = 1, 9
	case models.SegmentBack:
		lo, hi = 10, 18
	case models.SegmentOverall:
		lo, hi = 1, 18
	case models.SegmentMatch:
		lo, hi = 1, 18
	default:
		return utils.NewAppError(utils.ErrCodeValidation, fmt.Sprintf("unknown press segment %q", segment))
	}

	if gameType == models.GameMatchPlay && segment != models.SegmentMatch {
		return utils.NewAppError(utils.ErrCodeValidation, "match play presses use the match segment")
	}
	if gameType == models.GameNassau && segment == models.SegmentMatch {
		return utils.NewAppError(utils.ErrCodeValidation, "nassau presses use front, back or overall segments")
	}

	if startHole < lo || startHole > hi {
		return utils.NewAppError(utils.ErrCodeValidation,
			fmt.Sprintf("start hole %d is outside the %s segment", startHole, segment))
	}
	return nil
}
