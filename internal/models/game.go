package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameType identifies which wagering format a game uses
type GameType string

const (
	GameNassau     GameType = "nassau"
	GameMatchPlay  GameType = "match_play"
	GameSkins      GameType = "skins"
	GameWolf       GameType = "wolf"
	GameNines      GameType = "nines"
	GameStableford GameType = "stableford"
	GameVegas      GameType = "vegas"
	GameSnake      GameType = "snake"
	GameBanker     GameType = "banker"
	GameBingo      GameType = "bingo_bango_bongo"
)

// Game is one configured wager within a round. BetCents is the base stake in
// cents; its meaning is per-segment (Nassau), per-hole (Skins, Wolf, Banker,
// Vegas) or per-point (Nines, Stableford, Bingo-Bango-Bongo) depending on Type.
// Details holds the type-specific decision records as JSONB.
type Game struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RoundID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"round_id"`
	Type      GameType       `gorm:"not null" json:"type"`
	BetCents  int64          `gorm:"not null" json:"bet_cents"`
	Details   datatypes.JSON `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Players []GamePlayer `gorm:"foreignKey:GameID" json:"players,omitempty"`
	Presses []Press      `gorm:"foreignKey:GameID" json:"presses,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// GamePlayer links a round roster entry into a game. Slot is the player's
// order within the game (drives rotation and Vegas team pairing).
type GamePlayer struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	GameID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_player,priority:1" json:"game_id"`
	PlayerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_game_player,priority:2" json:"player_id"`
	Slot     int       `gorm:"not null" json:"slot"`
}

func (GamePlayer) TableName() string {
	return "game_players"
}

// WolfDecision records what the wolf did on one hole. A nil PartnerID with
// LoneWolf false means the hole fell back to rotation with no partner pick
// recorded, which scores as lone wolf.
type WolfDecision struct {
	Hole      int        `json:"hole"`
	WolfID    *uuid.UUID `json:"wolf_id,omitempty"`
	PartnerID *uuid.UUID `json:"partner_id,omitempty"`
	LoneWolf  bool       `json:"lone_wolf"`
}

// BankerDecision overrides the rotation banker on one hole.
type BankerDecision struct {
	Hole     int       `json:"hole"`
	BankerID uuid.UUID `json:"banker_id"`
}

// BingoAward records the three per-hole point awards. Any of the three may be
// missing if the group did not track it on that hole.
type BingoAward struct {
	Hole         int        `json:"hole"`
	FirstOnGreen *uuid.UUID `json:"first_on_green,omitempty"`
	ClosestToPin *uuid.UUID `json:"closest_to_pin,omitempty"`
	FirstToHole  *uuid.UUID `json:"first_to_hole,omitempty"`
}

// GameDetails is the JSONB payload stored on Game.Details. Only the fields for
// the game's own type are populated.
type GameDetails struct {
	WolfDecisions   []WolfDecision   `json:"wolf_decisions,omitempty"`
	BankerDecisions []BankerDecision `json:"banker_decisions,omitempty"`
	VegasTeamA      []uuid.UUID      `json:"vegas_team_a,omitempty"`
	VegasTeamB      []uuid.UUID      `json:"vegas_team_b,omitempty"`
	BingoAwards     []BingoAward     `json:"bingo_awards,omitempty"`
}

// ParseDetails decodes the JSONB details column.
func (g *Game) ParseDetails() (*GameDetails, error) {
	details := &GameDetails{}
	if len(g.Details) == 0 {
		return details, nil
	}
	if err := json.Unmarshal(g.Details, details); err != nil {
		return nil, fmt.Errorf("failed to parse game details: %w", err)
	}
	return details, nil
}

// SetDetails encodes the details struct back into the JSONB column.
func (g *Game) SetDetails(details *GameDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode game details: %w", err)
	}
	g.Details = datatypes.JSON(data)
	return nil
}
