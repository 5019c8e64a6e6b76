package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("workout plan not found")
	ErrValidationFailed = errors.New("validation failed")
)

// PlanExerciseInput is one prescribed exercise in a create/update call.
type PlanExerciseInput struct {
	ExerciseID uuid.UUID
	Sets       int
	Reps       int
	Weight     *float64
	Duration   *int
	Notes      *string
}

// PlanService manages workout plans and their prescribed exercises.
type PlanService interface {
	CreatePlan(ctx context.Context, userID uuid.UUID, name string, description *string, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error)
	GetPlans(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutPlan, error)
	GetPlanByID(ctx context.Context, userID, planID uuid.UUID) (*domain.WorkoutPlan, error)
	UpdatePlan(ctx context.Context, userID, planID uuid.UUID, name string, description *string, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}

type planService struct {
	planRepo repository.WorkoutPlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(planRepo repository.WorkoutPlanRepository) PlanService {
	return &planService{planRepo: planRepo}
}

// CreatePlan creates a plan together with its prescriptions and returns it
// with resolved exercise details.
func (s *planService) CreatePlan(ctx context.Context, userID uuid.UUID, name string, description *string, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error) {
	if name == "" || userID == uuid.Nil {
		return nil, ErrValidationFailed
	}
	if err := validatePlanExercises(exercises); err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		UserID:      userID,
		Name:        name,
		Description: description,
		Exercises:   toWorkoutExercises(exercises),
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	// Fetch again so prescriptions come back with catalog entries resolved.
	return s.GetPlanByID(ctx, userID, planID)
}

// GetPlans returns the user's plans, newest first.
func (s *planService) GetPlans(ctx context.Context, userID uuid.UUID) ([]domain.WorkoutPlan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

// GetPlanByID returns the plan, or ErrPlanNotFound when absent or owned by
// another user (indistinguishable on purpose).
func (s *planService) GetPlanByID(ctx context.Context, userID, planID uuid.UUID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// UpdatePlan replaces the plan's name/description and its entire exercise
// list. Prescription row ids are not stable across an update.
func (s *planService) UpdatePlan(ctx context.Context, userID, planID uuid.UUID, name string, description *string, exercises []PlanExerciseInput) (*domain.WorkoutPlan, error) {
	if name == "" {
		return nil, ErrValidationFailed
	}
	if err := validatePlanExercises(exercises); err != nil {
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		ID:          planID,
		UserID:      userID,
		Name:        name,
		Description: description,
		Exercises:   toWorkoutExercises(exercises),
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return s.GetPlanByID(ctx, userID, planID)
}

// DeletePlan removes the plan and, through the cascade, its prescriptions.
func (s *planService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	err := s.planRepo.Delete(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

func validatePlanExercises(exercises []PlanExerciseInput) error {
	for _, ex := range exercises {
		if ex.ExerciseID == uuid.Nil || ex.Sets <= 0 || ex.Reps <= 0 {
			return ErrValidationFailed
		}
	}
	return nil
}

func toWorkoutExercises(inputs []PlanExerciseInput) []domain.WorkoutExercise {
	exercises := make([]domain.WorkoutExercise, len(inputs))
	for i, in := range inputs {
		exercises[i] = domain.WorkoutExercise{
			ExerciseID: in.ExerciseID,
			Sets:       in.Sets,
			Reps:       in.Reps,
			Weight:     in.Weight,
			Duration:   in.Duration,
			Notes:      in.Notes,
		}
	}
	return exercises
}
