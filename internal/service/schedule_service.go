package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrScheduledWorkoutNotFound = errors.New("scheduled workout not found")
	ErrWorkoutAlreadyCompleted  = errors.New("workout is already marked as completed")
)

// ExerciseResultInput is one performed exercise in a completion call. The
// exercise id is deliberately not cross-checked against the plan's
// prescriptions; ad-hoc substitutions are allowed.
type ExerciseResultInput struct {
	ExerciseID uuid.UUID
	Sets       int
	Reps       int
	Weight     *float64
	Duration   *int
	Notes      *string
}

// ScheduleService schedules workouts and records their completion.
type ScheduleService interface {
	ScheduleWorkout(ctx context.Context, userID, planID uuid.UUID, scheduledFor time.Time) (*domain.ScheduledWorkout, error)
	GetScheduledWorkouts(ctx context.Context, userID uuid.UUID, completed bool) ([]domain.ScheduledWorkout, error)
	CompleteWorkout(ctx context.Context, userID, scheduledWorkoutID uuid.UUID, notes *string, rating *int, duration *int, results []ExerciseResultInput) (*domain.CompletedWorkout, error)
	GetCompletedWorkouts(ctx context.Context, userID uuid.UUID) ([]domain.CompletedWorkout, error)
}

type scheduleService struct {
	scheduleRepo  repository.ScheduledWorkoutRepository
	planRepo      repository.WorkoutPlanRepository
	completedRepo repository.CompletedWorkoutRepository
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(
	scheduleRepo repository.ScheduledWorkoutRepository,
	planRepo repository.WorkoutPlanRepository,
	completedRepo repository.CompletedWorkoutRepository,
) ScheduleService {
	return &scheduleService{
		scheduleRepo:  scheduleRepo,
		planRepo:      planRepo,
		completedRepo: completedRepo,
	}
}

// ScheduleWorkout creates a scheduled workout after verifying the plan
// exists and belongs to the user.
func (s *scheduleService) ScheduleWorkout(ctx context.Context, userID, planID uuid.UUID, scheduledFor time.Time) (*domain.ScheduledWorkout, error) {
	plan, err := s.planRepo.GetByID(ctx, planID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	sw := &domain.ScheduledWorkout{
		WorkoutPlanID: planID,
		UserID:        userID,
		ScheduledFor:  scheduledFor,
	}
	if _, err := s.scheduleRepo.Create(ctx, sw); err != nil {
		return nil, err
	}
	sw.WorkoutPlan = plan
	return sw, nil
}

// GetScheduledWorkouts lists the user's scheduled workouts filtered by the
// completed flag, scheduled time ascending.
func (s *scheduleService) GetScheduledWorkouts(ctx context.Context, userID uuid.UUID, completed bool) ([]domain.ScheduledWorkout, error) {
	return s.scheduleRepo.GetByUserAndCompleted(ctx, userID, completed)
}

// CompleteWorkout converts a scheduled workout into a completed one with
// per-exercise results. The check-then-act on the completed flag and all
// writes happen inside one repository transaction, so a concurrent second
// completion of the same schedule fails with ErrWorkoutAlreadyCompleted
// and a mid-way failure leaves the flag at false.
func (s *scheduleService) CompleteWorkout(ctx context.Context, userID, scheduledWorkoutID uuid.UUID, notes *string, rating *int, duration *int, results []ExerciseResultInput) (*domain.CompletedWorkout, error) {
	cw := &domain.CompletedWorkout{
		ScheduledWorkoutID: scheduledWorkoutID,
		UserID:             userID,
		Notes:              notes,
		Rating:             rating,
		Duration:           duration,
	}

	resultRows := make([]domain.ExerciseResult, len(results))
	for i, in := range results {
		resultRows[i] = domain.ExerciseResult{
			ExerciseID: in.ExerciseID,
			Sets:       in.Sets,
			Reps:       in.Reps,
			Weight:     in.Weight,
			Duration:   in.Duration,
			Notes:      in.Notes,
		}
	}

	completed, err := s.scheduleRepo.Complete(ctx, cw, resultRows)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrScheduledWorkoutNotFound
		case errors.Is(err, repository.ErrAlreadyCompleted):
			return nil, ErrWorkoutAlreadyCompleted
		default:
			return nil, err
		}
	}
	return completed, nil
}

// GetCompletedWorkouts returns the user's completion history, newest first.
func (s *scheduleService) GetCompletedWorkouts(ctx context.Context, userID uuid.UUID) ([]domain.CompletedWorkout, error) {
	return s.completedRepo.GetByUser(ctx, userID)
}
