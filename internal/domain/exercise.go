package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is an entry in the seeded exercise catalog. Reference data:
// the API never mutates it, only the seeder writes here.
type Exercise struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // Unique
	Description string    `json:"description"`
	Category    string    `json:"category"`              // e.g. "Strength", "Cardio"
	MuscleGroup *string   `json:"muscleGroup,omitempty"` // e.g. "Chest", "Back"; nil for cardio etc.
	CreatedAt   time.Time `json:"createdAt"`
}
