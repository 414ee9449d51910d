package models

import (
	"time"

	"github.com/google/uuid"
)

// PressState is the lifecycle of a press. Active presses transition exactly
// once to a terminal state: won/lost/pushed at finalization, or canceled
// manually beforehand.
type PressState string

const (
	PressActive   PressState = "active"
	PressWon      PressState = "won"
	PressLost     PressState = "lost"
	PressPushed   PressState = "pushed"
	PressCanceled PressState = "canceled"
)

// PressSegment identifies which contest of the parent game a press nests in.
type PressSegment string

const (
	SegmentFront   PressSegment = "front"
	SegmentBack    PressSegment = "back"
	SegmentOverall PressSegment = "overall"
	SegmentMatch   PressSegment = "match"
)

// Press is a double-or-nothing sub-match opened mid-round inside a Nassau
// segment or match play game. Presses form a tree via ParentPressID; each node
// resolves independently over its own hole range.
type Press struct {
	ID            uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	GameID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"game_id"`
	Segment       PressSegment `gorm:"not null" json:"segment"`
	StartHole     int          `gorm:"not null" json:"start_hole"`
	InitiatorID   uuid.UUID    `gorm:"type:uuid;not null" json:"initiator_id"`
	ParentPressID *uuid.UUID   `gorm:"type:uuid" json:"parent_press_id,omitempty"`
	BetMultiplier int          `gorm:"not null;default:1" json:"bet_multiplier"`
	State         PressState   `gorm:"not null;default:'active'" json:"state"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Press) TableName() string {
	return "presses"
}

// IsTerminal reports whether the press has already been resolved or canceled.
func (p *Press) IsTerminal() bool {
	return p.State != PressActive
}
