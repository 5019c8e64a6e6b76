package service

import (
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"time"

	"github.com/google/uuid"
)

// ReportFilter narrows a report by date range and/or catalog tags. Nil/empty
// fields mean unbounded/unfiltered.
type ReportFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	Category    string
	MuscleGroup string
}

// WorkoutReport is the aggregate produced by GenerateReport.
type WorkoutReport struct {
	Summary         ReportSummary    `json:"summary"`
	Workouts        []ReportWorkout  `json:"workouts"`
	ExerciseDetails []ExerciseDetail `json:"exerciseDetails"`
}

type ReportSummary struct {
	TotalWorkouts int        `json:"totalWorkouts"`
	TotalDuration int        `json:"totalDuration"`
	AverageRating float64    `json:"averageRating"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
}

// ReportWorkout is one completed workout in the report's listing.
type ReportWorkout struct {
	ID              uuid.UUID `json:"id"`
	CompletedAt     time.Time `json:"completedAt"`
	Duration        *int      `json:"duration"`
	Rating          *int      `json:"rating"`
	WorkoutPlanName string    `json:"workoutPlanName"`
	ExerciseCount   int       `json:"exerciseCount"`
}

// ExerciseStats accumulates result rows for one exercise.
type ExerciseStats struct {
	TotalSets     int     `json:"totalSets"`
	TotalReps     int     `json:"totalReps"`
	TotalWeight   float64 `json:"totalWeight"`
	TotalDuration int     `json:"totalDuration"`
	Count         int     `json:"count"`
}

// ExerciseDetail is one catalog entry with its accumulated stats.
type ExerciseDetail struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	MuscleGroup *string       `json:"muscleGroup"`
	Stats       ExerciseStats `json:"stats"`
}

// ReportService aggregates completion history into summary statistics.
type ReportService interface {
	GenerateReport(ctx context.Context, userID uuid.UUID, filter ReportFilter) (*WorkoutReport, error)
}

type reportService struct {
	completedRepo repository.CompletedWorkoutRepository
	exerciseRepo  repository.ExerciseRepository
}

// NewReportService creates a new instance of reportService.
func NewReportService(completedRepo repository.CompletedWorkoutRepository, exerciseRepo repository.ExerciseRepository) ReportService {
	return &reportService{
		completedRepo: completedRepo,
		exerciseRepo:  exerciseRepo,
	}
}

// GenerateReport builds the workout report for one user.
//
// The summary and workout listing are computed over every completed workout
// in the date range. The category/muscleGroup filter applies only to the
// exerciseDetails section: an exercise excluded by it simply disappears
// from the details while its result rows still count toward the summary
// totals. Callers filtering by category should expect that asymmetry.
func (s *reportService) GenerateReport(ctx context.Context, userID uuid.UUID, filter ReportFilter) (*WorkoutReport, error) {
	completedWorkouts, err := s.completedRepo.GetByUserInRange(ctx, userID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	totalWorkouts := len(completedWorkouts)
	totalDuration := 0
	ratingSum := 0
	ratedCount := 0
	for _, cw := range completedWorkouts {
		if cw.Duration != nil {
			totalDuration += *cw.Duration
		}
		if cw.Rating != nil {
			ratingSum += *cw.Rating
			ratedCount++
		}
	}
	// With zero rated workouts the denominator stays 1, so averageRating
	// degenerates to 0 instead of "no data".
	denominator := ratedCount
	if denominator == 0 {
		denominator = 1
	}
	averageRating := float64(ratingSum) / float64(denominator)

	// Group result rows by exercise.
	exerciseStats := map[uuid.UUID]*ExerciseStats{}
	order := []uuid.UUID{}
	for _, cw := range completedWorkouts {
		for _, res := range cw.ExerciseResults {
			stats, ok := exerciseStats[res.ExerciseID]
			if !ok {
				stats = &ExerciseStats{}
				exerciseStats[res.ExerciseID] = stats
				order = append(order, res.ExerciseID)
			}
			stats.TotalSets += res.Sets
			stats.TotalReps += res.Reps
			if res.Weight != nil {
				stats.TotalWeight += *res.Weight
			}
			if res.Duration != nil {
				stats.TotalDuration += *res.Duration
			}
			stats.Count++
		}
	}

	// Resolve the seen exercises against the catalog; the category and
	// muscle group filters apply here and here only.
	exercises, err := s.exerciseRepo.GetByIDs(ctx, order, filter.Category, filter.MuscleGroup)
	if err != nil {
		return nil, err
	}

	exerciseDetails := make([]ExerciseDetail, 0, len(exercises))
	for _, ex := range exercises {
		exerciseDetails = append(exerciseDetails, ExerciseDetail{
			ID:          ex.ID,
			Name:        ex.Name,
			Category:    ex.Category,
			MuscleGroup: ex.MuscleGroup,
			Stats:       *exerciseStats[ex.ID],
		})
	}

	workouts := make([]ReportWorkout, 0, len(completedWorkouts))
	for _, cw := range completedWorkouts {
		workouts = append(workouts, ReportWorkout{
			ID:              cw.ID,
			CompletedAt:     cw.CompletedAt,
			Duration:        cw.Duration,
			Rating:          cw.Rating,
			WorkoutPlanName: cw.WorkoutPlanName,
			ExerciseCount:   len(cw.ExerciseResults),
		})
	}

	return &WorkoutReport{
		Summary: ReportSummary{
			TotalWorkouts: totalWorkouts,
			TotalDuration: totalDuration,
			AverageRating: averageRating,
			StartDate:     filter.StartDate,
			EndDate:       filter.EndDate,
		},
		Workouts:        workouts,
		ExerciseDetails: exerciseDetails,
	}, nil
}
