package postgres

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"alcyxob/workout-tracker/internal/repository"
)

// pgCompletedWorkoutRepository implements repository.CompletedWorkoutRepository.
type pgCompletedWorkoutRepository struct {
	db *pgxpool.Pool
}

// NewCompletedWorkoutRepository creates a new completion history repository.
func NewCompletedWorkoutRepository(db *pgxpool.Pool) repository.CompletedWorkoutRepository {
	return &pgCompletedWorkoutRepository{db: db}
}

func (r *pgCompletedWorkoutRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.CompletedWorkout, error) {
	return r.GetByUserInRange(ctx, userID, nil, nil)
}

// GetByUserInRange returns the user's completed workouts whose completed_at
// falls within [from, to] (nil bound = unbounded), completed_at descending,
// each carrying its plan name and exercise results.
func (r *pgCompletedWorkoutRepository) GetByUserInRange(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CompletedWorkout, error) {
	query := `SELECT cw.id, cw.scheduled_workout_id, cw.user_id, cw.notes, cw.rating,
	                 cw.duration, cw.completed_at, wp.name
	          FROM completed_workouts cw
	          JOIN scheduled_workouts sw ON sw.id = cw.scheduled_workout_id
	          JOIN workout_plans wp ON wp.id = sw.workout_plan_id
	          WHERE cw.user_id = $1`
	args := []any{userID}
	if from != nil {
		args = append(args, *from)
		query += ` AND cw.completed_at >= $2`
	}
	if to != nil {
		args = append(args, *to)
		if len(args) == 3 {
			query += ` AND cw.completed_at <= $3`
		} else {
			query += ` AND cw.completed_at <= $2`
		}
	}
	query += ` ORDER BY cw.completed_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []domain.CompletedWorkout{}
	for rows.Next() {
		var cw domain.CompletedWorkout
		err := rows.Scan(&cw.ID, &cw.ScheduledWorkoutID, &cw.UserID, &cw.Notes,
			&cw.Rating, &cw.Duration, &cw.CompletedAt, &cw.WorkoutPlanName)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.CompletedWorkout, len(workouts))
	for i := range workouts {
		refs[i] = &workouts[i]
	}
	if err := attachExerciseResults(ctx, r.db, refs); err != nil {
		return nil, err
	}
	return workouts, nil
}

// attachExerciseResults fills ExerciseResults for the given completed
// workouts in a single query.
func attachExerciseResults(ctx context.Context, db *pgxpool.Pool, workouts []*domain.CompletedWorkout) error {
	if len(workouts) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(workouts))
	byID := make(map[uuid.UUID]*domain.CompletedWorkout, len(workouts))
	for i, cw := range workouts {
		ids[i] = cw.ID
		byID[cw.ID] = cw
		cw.ExerciseResults = []domain.ExerciseResult{}
	}

	rows, err := db.Query(ctx,
		`SELECT id, completed_workout_id, exercise_id, sets, reps, weight, duration, notes
		 FROM exercise_results WHERE completed_workout_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var res domain.ExerciseResult
		err := rows.Scan(&res.ID, &res.CompletedWorkoutID, &res.ExerciseID,
			&res.Sets, &res.Reps, &res.Weight, &res.Duration, &res.Notes)
		if err != nil {
			return err
		}
		cw := byID[res.CompletedWorkoutID]
		cw.ExerciseResults = append(cw.ExerciseResults, res)
	}
	return rows.Err()
}
