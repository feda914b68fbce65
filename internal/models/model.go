package models

import (
	"time"
)

// Model is the base model for events and expenditures.
type Model struct {
	ID uint `json:"id" gorm:"primaryKey" example:"3"` // ID of the resource
	Timestamps
}

// Timestamps only contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2026-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2026-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// inUTC updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Timestamps) inUTC() {
	t.CreatedAt = t.CreatedAt.In(time.UTC)
	t.UpdatedAt = t.UpdatedAt.In(time.UTC)
}
