package models

import (
	"time"
)

// Category is a user-defined label sessions can be tagged with
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"not null" json:"name"`
}

// NoCategoryLabel is the display name used for sessions without a category
const NoCategoryLabel = "No category"

// DisplayName returns the category name or the no-category fallback label
func DisplayName(c *Category) string {
	if c == nil || c.Name == "" {
		return NoCategoryLabel
	}
	return c.Name
}
