package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetMuscleGroups(ctx context.Context) ([]string, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

// ListExercises returns catalog entries, optionally filtered by category
// and/or muscle group, name ascending.
func (s *exerciseService) ListExercises(ctx context.Context, category, muscleGroup string) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, category, muscleGroup)
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, id uuid.UUID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) GetCategories(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.Categories(ctx)
}

func (s *exerciseService) GetMuscleGroups(ctx context.Context) ([]string, error) {
	return s.exerciseRepo.MuscleGroups(ctx)
}
