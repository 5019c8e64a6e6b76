package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledWorkout is a planned instance of executing a plan. Completed
// flips false→true exactly once, together with the creation of its
// CompletedWorkout, inside the completion transaction.
type ScheduledWorkout struct {
	ID            uuid.UUID `json:"id"`
	WorkoutPlanID uuid.UUID `json:"workoutPlanId"`
	UserID        uuid.UUID `json:"userId"`
	ScheduledFor  time.Time `json:"scheduledFor"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"createdAt"`

	// Populated on reads.
	WorkoutPlan      *WorkoutPlan      `json:"workoutPlan,omitempty"`
	CompletedWorkout *CompletedWorkout `json:"completedWorkout,omitempty"`
}
