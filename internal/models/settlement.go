package models

import (
	"time"

	"github.com/google/uuid"
)

// SettlementStatus tracks whether a settlement has been paid out. The
// pending -> paid transition happens outside the settlement engine.
type SettlementStatus string

const (
	SettlementPending SettlementStatus = "pending"
	SettlementPaid    SettlementStatus = "paid"
)

// Settlement is one net obligation between two players, produced exactly once
// per round at finalization. AmountCents is always strictly positive; direction
// is FromPlayerID pays ToPlayerID. The unique index guarantees at most one row
// per ordered pair per round.
type Settlement struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	RoundID      uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_round_pair,priority:1" json:"round_id"`
	FromPlayerID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_round_pair,priority:2" json:"from_player_id"`
	ToPlayerID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_round_pair,priority:3" json:"to_player_id"`
	AmountCents  int64            `gorm:"not null" json:"amount_cents"`
	Status       SettlementStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (Settlement) TableName() string {
	return "settlements"
}
