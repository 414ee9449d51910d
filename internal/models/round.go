package models

import (
	"time"

	"github.com/google/uuid"
)

// RoundStatus represents the lifecycle of a round
type RoundStatus string

const (
	RoundInProgress RoundStatus = "in_progress"
	RoundCompleted  RoundStatus = "completed"
)

// Round is a single outing: a course, a date, a roster and its games.
// Status flips to completed exactly once, at finalization.
type Round struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	CourseID    uuid.UUID   `gorm:"type:uuid;not null" json:"course_id"`
	Date        time.Time   `gorm:"not null" json:"date"`
	Status      RoundStatus `gorm:"not null;default:'in_progress'" json:"status"`
	CreatedBy   uuid.UUID   `gorm:"type:uuid;not null" json:"created_by"`
	FinalizedAt *time.Time  `json:"finalized_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Course  *Course       `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Players []RoundPlayer `gorm:"foreignKey:RoundID" json:"players,omitempty"`
	Games   []Game        `gorm:"foreignKey:RoundID" json:"games,omitempty"`
}

func (Round) TableName() string {
	return "rounds"
}

// RoundPlayer is a roster entry. Position is the tee order and drives the
// wolf/banker rotation. A nil CourseHandicap means the player takes no
// handicap allowance in any game this round.
type RoundPlayer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RoundID        uuid.UUID `gorm:"type:uuid;not null;index" json:"round_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	DisplayName    string    `gorm:"not null" json:"display_name"`
	CourseHandicap *int      `json:"course_handicap,omitempty"`
	Position       int       `gorm:"not null" json:"position"`
	CreatedAt      time.Time `json:"created_at"`

	Scores []Score `gorm:"foreignKey:PlayerID" json:"scores,omitempty"`
}

func (RoundPlayer) TableName() string {
	return "round_players"
}

// Score is one player's result on one hole. A nil Strokes value means the hole
// has not been played yet, never zero strokes.
type Score struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoundID    uuid.UUID `gorm:"type:uuid;not null;index" json:"round_id"`
	PlayerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_player_hole,priority:1" json:"player_id"`
	HoleNumber int       `gorm:"not null;uniqueIndex:idx_player_hole,priority:2" json:"hole_number"`
	Strokes    *int      `json:"strokes,omitempty"`
	Putts      *int      `json:"putts,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Score) TableName() string {
	return "scores"
}
