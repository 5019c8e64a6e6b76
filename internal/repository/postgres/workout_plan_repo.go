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

// pgWorkoutPlanRepository implements repository.WorkoutPlanRepository.
type pgWorkoutPlanRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutPlanRepository creates a new workout plan repository.
func NewWorkoutPlanRepository(db *pgxpool.Pool) repository.WorkoutPlanRepository {
	return &pgWorkoutPlanRepository{db: db}
}

// Create inserts the plan and its prescribed exercises in one transaction.
func (r *pgWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (_ uuid.UUID, err error) {
	if plan.UserID == uuid.Nil || plan.Name == "" {
		return uuid.Nil, errors.New("plan requires userId and name")
	}
	plan.ID = uuid.New()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_plans (id, user_id, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		plan.ID, plan.UserID, plan.Name, plan.Description, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}

	if err = insertPlanExercises(ctx, tx, plan.ID, plan.Exercises); err != nil {
		return uuid.Nil, err
	}
	return plan.ID, nil
}

// GetByID retrieves a plan with its exercises and resolved catalog
// entries. The user_id predicate makes absence and foreign ownership
// indistinguishable, both are ErrNotFound.
func (r *pgWorkoutPlanRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM workout_plans WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadExercises(ctx, []*domain.WorkoutPlan{&plan}); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByUserID returns all of the user's plans with exercises, newest first.
func (r *pgWorkoutPlanRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutPlan, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []domain.WorkoutPlan{}
	for rows.Next() {
		var plan domain.WorkoutPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.WorkoutPlan, len(plans))
	for i := range plans {
		refs[i] = &plans[i]
	}
	if err := r.loadExercises(ctx, refs); err != nil {
		return nil, err
	}
	return plans, nil
}

// Update replaces the plan's name/description and its entire exercise list
// (delete-all-then-recreate) in one transaction. Prescription row ids are
// therefore not stable across an update.
func (r *pgWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE workout_plans SET name = $1, description = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5`,
		plan.Name, plan.Description, time.Now().UTC(), plan.ID, plan.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	_, err = tx.Exec(ctx, `DELETE FROM workout_exercises WHERE workout_plan_id = $1`, plan.ID)
	if err != nil {
		return err
	}

	return insertPlanExercises(ctx, tx, plan.ID, plan.Exercises)
}

// Delete removes the plan; workout_exercises rows go with it via the
// ON DELETE CASCADE foreign key.
func (r *pgWorkoutPlanRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func insertPlanExercises(ctx context.Context, tx pgx.Tx, planID uuid.UUID, exercises []domain.WorkoutExercise) error {
	for i := range exercises {
		we := &exercises[i]
		we.ID = uuid.New()
		we.WorkoutPlanID = planID
		_, err := tx.Exec(ctx,
			`INSERT INTO workout_exercises
				(id, workout_plan_id, exercise_id, sets, reps, weight, duration, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			we.ID, we.WorkoutPlanID, we.ExerciseID, we.Sets, we.Reps, we.Weight, we.Duration, we.Notes,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// loadExercises fills Exercises (with resolved catalog entries) for the
// given plans in a single query.
func (r *pgWorkoutPlanRepository) loadExercises(ctx context.Context, plans []*domain.WorkoutPlan) error {
	if len(plans) == 0 {
		return nil
	}
	planIDs := make([]uuid.UUID, len(plans))
	byID := make(map[uuid.UUID]*domain.WorkoutPlan, len(plans))
	for i, p := range plans {
		planIDs[i] = p.ID
		byID[p.ID] = p
		p.Exercises = []domain.WorkoutExercise{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT we.id, we.workout_plan_id, we.exercise_id, we.sets, we.reps,
		        we.weight, we.duration, we.notes,
		        e.id, e.name, e.description, e.category, e.muscle_group, e.created_at
		 FROM workout_exercises we
		 JOIN exercises e ON e.id = we.exercise_id
		 WHERE we.workout_plan_id = ANY($1)`,
		planIDs,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var we domain.WorkoutExercise
		var ex domain.Exercise
		err := rows.Scan(
			&we.ID, &we.WorkoutPlanID, &we.ExerciseID, &we.Sets, &we.Reps,
			&we.Weight, &we.Duration, &we.Notes,
			&ex.ID, &ex.Name, &ex.Description, &ex.Category, &ex.MuscleGroup, &ex.CreatedAt,
		)
		if err != nil {
			return err
		}
		we.Exercise = &ex
		plan := byID[we.WorkoutPlanID]
		plan.Exercises = append(plan.Exercises, we)
	}
	return rows.Err()
}
