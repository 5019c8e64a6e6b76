package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// Error constants for the repository layer.
var (
	ErrNotFound         = RepositoryError("not found")
	ErrDuplicate        = RepositoryError("already exists")
	ErrAlreadyCompleted = RepositoryError("already completed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// ExerciseRepository defines the interface for reading the exercise catalog.
// The catalog is reference data; only the seeder writes to it.
type ExerciseRepository interface {
	List(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	// GetByIDs resolves catalog entries for the given ids, additionally
	// filtered by category/muscleGroup when non-empty. Ids excluded by the
	// filter are simply absent from the result.
	GetByIDs(ctx context.Context, ids []uuid.UUID, category, muscleGroup string) ([]domain.Exercise, error)
	Categories(ctx context.Context) ([]string, error)
	MuscleGroups(ctx context.Context) ([]string, error)
	Upsert(ctx context.Context, exercise *domain.Exercise) (uuid.UUID, error)
}

// WorkoutPlanRepository defines the interface for workout plans and their
// prescribed exercises. Create and Update are atomic over the plan row and
// its workout_exercises children; Update replaces the whole exercise list.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (uuid.UUID, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.WorkoutPlan, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ScheduledWorkoutRepository defines the interface for scheduled workouts
// and the completion state transition.
type ScheduledWorkoutRepository interface {
	Create(ctx context.Context, sw *domain.ScheduledWorkout) (uuid.UUID, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.ScheduledWorkout, error)
	GetByUserAndCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]domain.ScheduledWorkout, error)
	// Complete atomically flips the completed flag and creates the
	// CompletedWorkout with its ExerciseResult children. The scheduled
	// workout row is locked for the duration of the transaction, so only
	// one of two concurrent calls can succeed; the loser gets
	// ErrAlreadyCompleted. Returns ErrNotFound when the id is absent or
	// owned by a different user.
	Complete(ctx context.Context, cw *domain.CompletedWorkout, results []domain.ExerciseResult) (*domain.CompletedWorkout, error)
}

// CompletedWorkoutRepository defines read access to completion history,
// the sole input of the report aggregator.
type CompletedWorkoutRepository interface {
	// GetByUser returns the user's completed workouts with their plan
	// names and exercise results, completedAt descending.
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.CompletedWorkout, error)
	// GetByUserInRange is GetByUser restricted to completedAt within
	// [from, to]; either bound may be nil, meaning unbounded on that side.
	GetByUserInRange(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CompletedWorkout, error)
}
