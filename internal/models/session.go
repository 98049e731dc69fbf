package models

import (
	"time"
)

// Session represents a completed time tracking interval
type Session struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CategoryID      *uint     `json:"category_id"`
	StartedAt       time.Time `gorm:"not null" json:"started_at"`
	EndedAt         time.Time `gorm:"not null" json:"ended_at"`
	DurationSeconds int       `gorm:"not null" json:"duration_seconds"`

	// Relationships
	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
}

// CategoryName returns the session's category display name
func (s *Session) CategoryName() string {
	return DisplayName(s.Category)
}

// ActiveSession is the singleton in-progress interval. It has no end or
// duration; elapsed time is derived at read time from StartedAt.
type ActiveSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CategoryID *uint     `json:"category_id"`
	StartedAt  time.Time `gorm:"not null" json:"started_at"`

	// Relationships
	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`
}

// CategoryName returns the active session's category display name
func (s *ActiveSession) CategoryName() string {
	return DisplayName(s.Category)
}
