package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jkelleher/presspool/internal/engine"
	"github.com/jkelleher/presspool/internal/models"
	"github.com/jkelleher/presspool/pkg/database"
	"github.com/jkelleher/presspool/pkg/utils"
)

// RoundCalculator loads a round's full state from the database and runs the
// wagering engine over it. It is read-only; persisting results is the
// finalizer's job.
type RoundCalculator struct {
	db       *database.DB
	cache    *CacheService
	logger   *logrus.Logger
	maxBet   engine.Cents
	cacheTTL time.Duration
}

func NewRoundCalculator(db *database.DB, cache *CacheService, logger *logrus.Logger, maxBetCents int64, cacheTTL time.Duration) *RoundCalculator {
	return &RoundCalculator{
		db:       db,
		cache:    cache,
		logger:   logger,
		maxBet:   engine.Cents(maxBetCents),
		cacheTTL: cacheTTL,
	}
}

// PressView is the API shape of one press: its stored fields plus, while the
// press is active, the live match state over its hole range.
type PressView struct {
	PressID       uuid.UUID           `json:"press_id"`
	GameID        uuid.UUID           `json:"game_id"`
	Segment       models.PressSegment `json:"segment"`
	StartHole     int                 `json:"start_hole"`
	InitiatorID   uuid.UUID           `json:"initiator_id"`
	ParentPressID *uuid.UUID          `json:"parent_press_id,omitempty"`
	BetMultiplier int                 `json:"bet_multiplier"`
	State         models.PressState   `json:"state"`
	Match         *engine.MatchStatus `json:"match,omitempty"`
}

// RoundResults is the live (or final) settlement view of a round. Projected
// is what the settlements would be if the round ended as it stands: all game
// obligations plus active presses resolved at the current score, consolidated
// to one entry per player pair.
type RoundResults struct {
	RoundID     uuid.UUID            `json:"round_id"`
	Status      models.RoundStatus   `json:"status"`
	FinalizedAt *time.Time           `json:"finalized_at,omitempty"`
	Games       []*engine.GameResult `json:"games"`
	Presses     []PressView          `json:"presses,omitempty"`
	// Games that currently accept a new press: match games in an ongoing
	// round that still have holes left to play.
	Pressable []uuid.UUID         `json:"pressable_game_ids,omitempty"`
	Projected []engine.Obligation `json:"projected_settlements"`
}

// snapshot is everything the engine needs for one round, detached from gorm.
type snapshot struct {
	round   *models.Round
	holes   []engine.Hole
	games   []engine.Game
	presses map[uuid.UUID][]models.Press
}

// CalculateResults computes the full live view of a round, serving from cache
// when a fresh copy exists.
func (s *RoundCalculator) CalculateResults(ctx context.Context, roundID uuid.UUID) (*RoundResults, error) {
	cacheKey := ResultsCacheKey(roundID)
	if s.cache != nil {
		var cached RoundResults
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	snap, err := s.loadSnapshot(ctx, roundID)
	if err != nil {
		return nil, err
	}

	results, err := s.compute(snap)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetWithRetry(ctx, cacheKey, results, s.cacheTTL, 3); err != nil {
			s.logger.WithError(err).Warn("Failed to cache round results")
		}
	}
	return results, nil
}

// InvalidateResults evicts a round's cached results after a write.
func (s *RoundCalculator) InvalidateResults(ctx context.Context, roundID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ResultsCacheKey(roundID)); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate round results cache")
	}
}

func (s *RoundCalculator) loadSnapshot(ctx context.Context, roundID uuid.UUID) (*snapshot, error) {
	var round models.Round
	err := s.db.WithContext(ctx).
		Preload("Course.Holes").
		Preload("Players.Scores").
		Preload("Games.Players").
		Preload("Games.Presses").
		First(&round, "id = ?", roundID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load round: %w", err)
	}
	if round.Course == nil {
		return nil, fmt.Errorf("round %s has no course", roundID)
	}

	holes := make([]engine.Hole, 0, len(round.Course.Holes))
	for _, h := range round.Course.Holes {
		holes = append(holes, engine.Hole{Number: h.Number, Par: h.Par, StrokeIndex: h.StrokeIndex})
	}

	roster := make(map[uuid.UUID]engine.Player, len(round.Players))
	for _, rp := range round.Players {
		p := engine.Player{
			ID:             rp.ID,
			Name:           rp.DisplayName,
			CourseHandicap: rp.CourseHandicap,
			Scores:         make(map[int]engine.Score, len(rp.Scores)),
		}
		for _, sc := range rp.Scores {
			p.Scores[sc.HoleNumber] = engine.Score{Strokes: sc.Strokes, Putts: sc.Putts}
		}
		roster[rp.ID] = p
	}

	snap := &snapshot{
		round:   &round,
		holes:   holes,
		games:   make([]engine.Game, 0, len(round.Games)),
		presses: make(map[uuid.UUID][]models.Press),
	}

	for i := range round.Games {
		g := &round.Games[i]
		eg, err := s.toEngineGame(g, roster)
		if err != nil {
			return nil, err
		}
		snap.games = append(snap.games, eg)
		snap.presses[g.ID] = g.Presses
	}
	return snap, nil
}

func (s *RoundCalculator) toEngineGame(g *models.Game, roster map[uuid.UUID]engine.Player) (engine.Game, error) {
	details, err := g.ParseDetails()
	if err != nil {
		return engine.Game{}, err
	}

	members := make([]models.GamePlayer, len(g.Players))
	copy(members, g.Players)
	sort.Slice(members, func(a, b int) bool { return members[a].Slot < members[b].Slot })

	players := make([]engine.Player, 0, len(members))
	for _, m := range members {
		p, ok := roster[m.PlayerID]
		if !ok {
			return engine.Game{}, fmt.Errorf("game %s references player %s outside the round roster", g.ID, m.PlayerID)
		}
		players = append(players, p)
	}

	return engine.Game{
		ID:              g.ID,
		Type:            g.Type,
		BetCents:        engine.Cents(g.BetCents),
		Players:         players,
		WolfDecisions:   details.WolfDecisions,
		BankerDecisions: details.BankerDecisions,
		VegasTeamA:      details.VegasTeamA,
		VegasTeamB:      details.VegasTeamB,
		BingoAwards:     details.BingoAwards,
	}, nil
}

func (s *RoundCalculator) compute(snap *snapshot) (*RoundResults, error) {
	if appErr := engine.ValidateGames(snap.games, s.maxBet); appErr != nil {
		return nil, appErr
	}

	results := &RoundResults{
		RoundID:     snap.round.ID,
		Status:      snap.round.Status,
		FinalizedAt: snap.round.FinalizedAt,
		Games:       make([]*engine.GameResult, 0, len(snap.games)),
	}

	var obligations []engine.Obligation
	for _, g := range snap.games {
		gr, err := engine.ScoreGame(g, snap.holes)
		if err != nil {
			return nil, err
		}
		results.Games = append(results.Games, gr)
		obligations = append(obligations, gr.Obligations...)

		if snap.round.Status == models.RoundInProgress &&
			(g.Type == models.GameNassau || g.Type == models.GameMatchPlay) &&
			gr.Match != nil && gr.Match.HolesRemaining > 0 {
			results.Pressable = append(results.Pressable, g.ID)
		}

		for _, p := range snap.presses[g.ID] {
			view := PressView{
				PressID:       p.ID,
				GameID:        p.GameID,
				Segment:       p.Segment,
				StartHole:     p.StartHole,
				InitiatorID:   p.InitiatorID,
				ParentPressID: p.ParentPressID,
				BetMultiplier: p.BetMultiplier,
				State:         p.State,
			}
			if p.State == models.PressActive {
				input := pressInput(p)
				match := engine.EvalPress(input, g, snap.holes)
				view.Match = &match
				// Project the press as if the round ended now.
				if outcome := engine.ResolvePress(input, g, snap.holes); outcome.Obligation != nil {
					obligations = append(obligations, *outcome.Obligation)
				}
			}
			results.Presses = append(results.Presses, view)
		}
	}

	results.Projected = engine.Consolidate(obligations)
	return results, nil
}

func pressInput(p models.Press) engine.PressInput {
	return engine.PressInput{
		ID:            p.ID,
		Segment:       p.Segment,
		StartHole:     p.StartHole,
		InitiatorID:   p.InitiatorID,
		BetMultiplier: p.BetMultiplier,
		State:         p.State,
	}
}
