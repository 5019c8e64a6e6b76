package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompletedWorkout records that a scheduled workout was actually performed.
// Immutable once written; created atomically with its ExerciseResult
// children by the completion transaction.
type CompletedWorkout struct {
	ID                 uuid.UUID `json:"id"`
	ScheduledWorkoutID uuid.UUID `json:"scheduledWorkoutId"`
	UserID             uuid.UUID `json:"userId"`
	Notes              *string   `json:"notes,omitempty"`
	Rating             *int      `json:"rating,omitempty"`   // 1-5
	Duration           *int      `json:"duration,omitempty"` // Minutes, total session
	CompletedAt        time.Time `json:"completedAt"`

	ExerciseResults []ExerciseResult `json:"exerciseResults"`

	// Name of the plan behind the scheduled workout, populated by list
	// and report queries.
	WorkoutPlanName string `json:"workoutPlanName,omitempty"`
}

// ExerciseResult is what was actually performed for one exercise within a
// completed workout, independent of the original prescription.
type ExerciseResult struct {
	ID                 uuid.UUID `json:"id"`
	CompletedWorkoutID uuid.UUID `json:"completedWorkoutId"`
	ExerciseID         uuid.UUID `json:"exerciseId"`
	Sets               int       `json:"sets"`
	Reps               int       `json:"reps"`
	Weight             *float64  `json:"weight,omitempty"`
	Duration           *int      `json:"duration,omitempty"` // Seconds
	Notes              *string   `json:"notes,omitempty"`
}
