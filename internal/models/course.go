package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a golf course and its 18-hole layout.
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Holes []Hole `gorm:"foreignKey:CourseID" json:"holes,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Hole is one hole of a course. StrokeIndex is the hole's difficulty ranking
// (1 = hardest); the 18 values on a course form a permutation of 1-18 and drive
// handicap stroke allocation.
type Hole struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_hole,priority:1" json:"course_id"`
	Number      int       `gorm:"not null;uniqueIndex:idx_course_hole,priority:2" json:"number"`
	Par         int       `gorm:"not null" json:"par"`
	StrokeIndex int       `gorm:"not null" json:"stroke_index"`
}

func (Hole) TableName() string {
	return "holes"
}
