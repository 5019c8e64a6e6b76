package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutPlan is a named, user-owned template listing prescribed exercises.
type WorkoutPlan struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Prescriptions belonging to this plan, in display order.
	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is a prescription within a plan (sets/reps the user is
// supposed to do), not a record of a performance.
type WorkoutExercise struct {
	ID            uuid.UUID `json:"id"`
	WorkoutPlanID uuid.UUID `json:"workoutPlanId"`
	ExerciseID    uuid.UUID `json:"exerciseId"`
	Sets          int       `json:"sets"`
	Reps          int       `json:"reps"`
	Weight        *float64  `json:"weight,omitempty"`
	Duration      *int      `json:"duration,omitempty"` // Seconds
	Notes         *string   `json:"notes,omitempty"`

	// Resolved catalog entry, populated on reads.
	Exercise *Exercise `json:"exercise,omitempty"`
}
