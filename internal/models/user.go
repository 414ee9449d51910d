package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. Identity management itself lives in
// an external service; this table only mirrors what settlement records need.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
