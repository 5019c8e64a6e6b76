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

// pgExerciseRepository implements repository.ExerciseRepository.
type pgExerciseRepository struct {
	db *pgxpool.Pool
}

// NewExerciseRepository creates a new exercise catalog repository.
func NewExerciseRepository(db *pgxpool.Pool) repository.ExerciseRepository {
	return &pgExerciseRepository{db: db}
}

const exerciseColumns = `id, name, description, category, muscle_group, created_at`

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	var ex domain.Exercise
	err := row.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Category, &ex.MuscleGroup, &ex.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

// List returns catalog entries, optionally filtered by exact category
// and/or muscle group, ordered by name ascending.
func (r *pgExerciseRepository) List(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE 1=1`
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += ` AND category = $1`
	}
	if muscleGroup != "" {
		args = append(args, muscleGroup)
		if len(args) == 2 {
			query += ` AND muscle_group = $2`
		} else {
			query += ` AND muscle_group = $1`
		}
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExercises(rows)
}

func (r *pgExerciseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	ex, err := scanExercise(r.db.QueryRow(ctx,
		`SELECT `+exerciseColumns+` FROM exercises WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return ex, nil
}

// GetByIDs resolves the given ids against the catalog, additionally
// filtered by category/muscleGroup when non-empty. An id excluded by the
// filter is silently absent from the result.
func (r *pgExerciseRepository) GetByIDs(ctx context.Context, ids []uuid.UUID, category, muscleGroup string) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return []domain.Exercise{}, nil
	}

	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ANY($1)`
	args := []any{ids}
	if category != "" {
		args = append(args, category)
		query += ` AND category = $2`
	}
	if muscleGroup != "" {
		args = append(args, muscleGroup)
		if len(args) == 3 {
			query += ` AND muscle_group = $3`
		} else {
			query += ` AND muscle_group = $2`
		}
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExercises(rows)
}

// Categories returns the distinct categories present in the catalog,
// ascending.
func (r *pgExerciseRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx,
		`SELECT DISTINCT category FROM exercises ORDER BY category ASC`)
}

// MuscleGroups returns the distinct non-null muscle groups, ascending.
func (r *pgExerciseRepository) MuscleGroups(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx,
		`SELECT DISTINCT muscle_group FROM exercises
		 WHERE muscle_group IS NOT NULL ORDER BY muscle_group ASC`)
}

// Upsert inserts a catalog entry or, if the name is already present,
// refreshes its description/category/muscle group. Used by the seeder.
func (r *pgExerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) (uuid.UUID, error) {
	if exercise.ID == uuid.Nil {
		exercise.ID = uuid.New()
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now().UTC()
	}

	var id uuid.UUID
	err := r.db.QueryRow(ctx,
		`INSERT INTO exercises (id, name, description, category, muscle_group, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name) DO UPDATE
		 SET description = EXCLUDED.description,
		     category = EXCLUDED.category,
		     muscle_group = EXCLUDED.muscle_group
		 RETURNING id`,
		exercise.ID, exercise.Name, exercise.Description, exercise.Category,
		exercise.MuscleGroup, exercise.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	exercise.ID = id
	return id, nil
}

func (r *pgExerciseRepository) distinctStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func collectExercises(rows pgx.Rows) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, *ex)
	}
	return exercises, rows.Err()
}
