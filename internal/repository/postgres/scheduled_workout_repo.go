package postgres

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgScheduledWorkoutRepository implements repository.ScheduledWorkoutRepository.
type pgScheduledWorkoutRepository struct {
	db    *pgxpool.Pool
	plans repository.WorkoutPlanRepository
}

// NewScheduledWorkoutRepository creates a new scheduled workout repository.
// The plan repository is used to attach full plans to list results.
func NewScheduledWorkoutRepository(db *pgxpool.Pool, plans repository.WorkoutPlanRepository) repository.ScheduledWorkoutRepository {
	return &pgScheduledWorkoutRepository{db: db, plans: plans}
}

// Create inserts a scheduled workout with completed=false.
func (r *pgScheduledWorkoutRepository) Create(ctx context.Context, sw *domain.ScheduledWorkout) (uuid.UUID, error) {
	if sw.WorkoutPlanID == uuid.Nil || sw.UserID == uuid.Nil {
		return uuid.Nil, errors.New("scheduled workout requires workoutPlanId and userId")
	}
	sw.ID = uuid.New()
	sw.Completed = false
	sw.CreatedAt = time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO scheduled_workouts (id, workout_plan_id, user_id, scheduled_for, completed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sw.ID, sw.WorkoutPlanID, sw.UserID, sw.ScheduledFor, sw.Completed, sw.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return sw.ID, nil
}

func (r *pgScheduledWorkoutRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.ScheduledWorkout, error) {
	var sw domain.ScheduledWorkout
	err := r.db.QueryRow(ctx,
		`SELECT id, workout_plan_id, user_id, scheduled_for, completed, created_at
		 FROM scheduled_workouts WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&sw.ID, &sw.WorkoutPlanID, &sw.UserID, &sw.ScheduledFor, &sw.Completed, &sw.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &sw, nil
}

// GetByUserAndCompleted lists the user's scheduled workouts filtered by
// the completed flag, scheduled_for ascending, each with its full plan.
// Completed rows additionally carry their CompletedWorkout.
func (r *pgScheduledWorkoutRepository) GetByUserAndCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]domain.ScheduledWorkout, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, workout_plan_id, user_id, scheduled_for, completed, created_at
		 FROM scheduled_workouts
		 WHERE user_id = $1 AND completed = $2
		 ORDER BY scheduled_for ASC`,
		userID, completed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []domain.ScheduledWorkout{}
	for rows.Next() {
		var sw domain.ScheduledWorkout
		if err := rows.Scan(&sw.ID, &sw.WorkoutPlanID, &sw.UserID, &sw.ScheduledFor, &sw.Completed, &sw.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, sw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		plan, err := r.plans.GetByID(ctx, workouts[i].WorkoutPlanID, userID)
		if err != nil {
			return nil, err
		}
		workouts[i].WorkoutPlan = plan
	}

	if completed {
		if err := r.attachCompletions(ctx, workouts); err != nil {
			return nil, err
		}
	}
	return workouts, nil
}

// Complete performs the completion state transition as a single
// transaction:
//
//  1. lock the scheduled workout row (FOR UPDATE) and read its flag,
//  2. flip completed to true,
//  3. insert the completed workout and its exercise results.
//
// The lock serializes concurrent completions of the same schedule: the
// second caller blocks on step 1 and then observes completed=true.
func (r *pgScheduledWorkoutRepository) Complete(ctx context.Context, cw *domain.CompletedWorkout, results []domain.ExerciseResult) (_ *domain.CompletedWorkout, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	var completed bool
	err = tx.QueryRow(ctx,
		`SELECT completed FROM scheduled_workouts
		 WHERE id = $1 AND user_id = $2
		 FOR UPDATE`,
		cw.ScheduledWorkoutID, cw.UserID,
	).Scan(&completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if completed {
		return nil, repository.ErrAlreadyCompleted
	}

	_, err = tx.Exec(ctx,
		`UPDATE scheduled_workouts SET completed = TRUE WHERE id = $1`,
		cw.ScheduledWorkoutID,
	)
	if err != nil {
		return nil, err
	}

	cw.ID = uuid.New()
	if cw.CompletedAt.IsZero() {
		cw.CompletedAt = time.Now().UTC()
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO completed_workouts (id, scheduled_workout_id, user_id, notes, rating, duration, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cw.ID, cw.ScheduledWorkoutID, cw.UserID, cw.Notes, cw.Rating, cw.Duration, cw.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	cw.ExerciseResults = make([]domain.ExerciseResult, 0, len(results))
	for i := range results {
		res := results[i]
		res.ID = uuid.New()
		res.CompletedWorkoutID = cw.ID
		_, err = tx.Exec(ctx,
			`INSERT INTO exercise_results
				(id, completed_workout_id, exercise_id, sets, reps, weight, duration, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			res.ID, res.CompletedWorkoutID, res.ExerciseID, res.Sets, res.Reps, res.Weight, res.Duration, res.Notes,
		)
		if err != nil {
			return nil, err
		}
		cw.ExerciseResults = append(cw.ExerciseResults, res)
	}

	return cw, nil
}

// attachCompletions loads the CompletedWorkout rows (with results) for the
// given completed schedules.
func (r *pgScheduledWorkoutRepository) attachCompletions(ctx context.Context, workouts []domain.ScheduledWorkout) error {
	if len(workouts) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(workouts))
	byScheduleID := make(map[uuid.UUID]*domain.ScheduledWorkout, len(workouts))
	for i := range workouts {
		ids[i] = workouts[i].ID
		byScheduleID[workouts[i].ID] = &workouts[i]
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, scheduled_workout_id, user_id, notes, rating, duration, completed_at
		 FROM completed_workouts WHERE scheduled_workout_id = ANY($1)`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	completions := []*domain.CompletedWorkout{}
	for rows.Next() {
		var cw domain.CompletedWorkout
		err := rows.Scan(&cw.ID, &cw.ScheduledWorkoutID, &cw.UserID, &cw.Notes, &cw.Rating, &cw.Duration, &cw.CompletedAt)
		if err != nil {
			return err
		}
		completions = append(completions, &cw)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := attachExerciseResults(ctx, r.db, completions); err != nil {
		return err
	}
	for _, cw := range completions {
		if sw, ok := byScheduleID[cw.ScheduledWorkoutID]; ok {
			sw.CompletedWorkout = cw
		}
	}
	return nil
}
