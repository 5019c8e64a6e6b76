package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Every plan, schedule and
// completion in the system belongs to exactly one user.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Unique
	PasswordHash string    `json:"-"`     // Never expose this via JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
