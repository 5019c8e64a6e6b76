package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleFixture(t *testing.T) (*fakePlanRepo, *fakeScheduleRepo, *fakeCompletedRepo, ScheduleService) {
	t.Helper()
	planRepo := newFakePlanRepo()
	scheduleRepo := newFakeScheduleRepo(planRepo)
	completedRepo := newFakeCompletedRepo()
	svc := NewScheduleService(scheduleRepo, planRepo, completedRepo)
	return planRepo, scheduleRepo, completedRepo, svc
}

func createPlanFor(t *testing.T, planRepo *fakePlanRepo, userID uuid.UUID) uuid.UUID {
	t.Helper()
	plans := NewPlanService(planRepo)
	plan, err := plans.CreatePlan(context.Background(), userID, "Test Plan", nil, []PlanExerciseInput{
		{ExerciseID: uuid.New(), Sets: 3, Reps: 10},
	})
	require.NoError(t, err)
	return plan.ID
}

func TestScheduleWorkout(t *testing.T) {
	planRepo, _, _, svc := newScheduleFixture(t)
	userID := uuid.New()
	planID := createPlanFor(t, planRepo, userID)

	when := time.Now().Add(24 * time.Hour).UTC()
	scheduled, err := svc.ScheduleWorkout(context.Background(), userID, planID, when)
	require.NoError(t, err)
	assert.False(t, scheduled.Completed)
	assert.Equal(t, planID, scheduled.WorkoutPlanID)
	assert.True(t, scheduled.ScheduledFor.Equal(when))
	require.NotNil(t, scheduled.WorkoutPlan)
	assert.Equal(t, "Test Plan", scheduled.WorkoutPlan.Name)
}

func TestScheduleWorkout_UnknownOrForeignPlan(t *testing.T) {
	planRepo, _, _, svc := newScheduleFixture(t)
	owner := uuid.New()
	intruder := uuid.New()
	planID := createPlanFor(t, planRepo, owner)

	_, err := svc.ScheduleWorkout(context.Background(), owner, uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Scheduling against someone else's plan is indistinguishable from a
	// missing plan.
	_, err = svc.ScheduleWorkout(context.Background(), intruder, planID, time.Now())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCompleteWorkout(t *testing.T) {
	planRepo, scheduleRepo, _, svc := newScheduleFixture(t)
	userID := uuid.New()
	planID := createPlanFor(t, planRepo, userID)

	scheduled, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now())
	require.NoError(t, err)

	rating := 4
	notes := "felt strong"
	weight := 80.0
	completed, err := svc.CompleteWorkout(context.Background(), userID, scheduled.ID, &notes, &rating, nil, []ExerciseResultInput{
		{ExerciseID: uuid.New(), Sets: 3, Reps: 10, Weight: &weight},
		{ExerciseID: uuid.New(), Sets: 2, Reps: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, scheduled.ID, completed.ScheduledWorkoutID)
	assert.Equal(t, 4, *completed.Rating)
	require.Len(t, completed.ExerciseResults, 2)
	for _, res := range completed.ExerciseResults {
		assert.Equal(t, completed.ID, res.CompletedWorkoutID)
	}

	sw, err := scheduleRepo.GetByID(context.Background(), scheduled.ID, userID)
	require.NoError(t, err)
	assert.True(t, sw.Completed)
}

func TestCompleteWorkout_Twice(t *testing.T) {
	planRepo, scheduleRepo, _, svc := newScheduleFixture(t)
	userID := uuid.New()
	planID := createPlanFor(t, planRepo, userID)

	scheduled, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now())
	require.NoError(t, err)

	_, err = svc.CompleteWorkout(context.Background(), userID, scheduled.ID, nil, nil, nil, nil)
	require.NoError(t, err)

	_, err = svc.CompleteWorkout(context.Background(), userID, scheduled.ID, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrWorkoutAlreadyCompleted)

	// Exactly one completion exists for the schedule afterwards.
	assert.Len(t, scheduleRepo.completions, 1)
}

// Covers the service-level contract that a failed completion leaves the
// schedule untouched and retryable. The fake fails before mutating any
// state; the actual transaction rollback in the Postgres repository needs
// a database-backed test.
func TestCompleteWorkout_RollbackOnFailure(t *testing.T) {
	planRepo, scheduleRepo, _, svc := newScheduleFixture(t)
	userID := uuid.New()
	planID := createPlanFor(t, planRepo, userID)

	scheduled, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now())
	require.NoError(t, err)

	scheduleRepo.failCompletion = errStorageFailure
	_, err = svc.CompleteWorkout(context.Background(), userID, scheduled.ID, nil, nil, nil, []ExerciseResultInput{
		{ExerciseID: uuid.New(), Sets: 3, Reps: 10},
	})
	require.ErrorIs(t, err, errStorageFailure)

	// The failed attempt left no trace: flag still false, no completion
	// row, and a retry succeeds.
	sw, err := scheduleRepo.GetByID(context.Background(), scheduled.ID, userID)
	require.NoError(t, err)
	assert.False(t, sw.Completed)
	assert.Empty(t, scheduleRepo.completions)

	scheduleRepo.failCompletion = nil
	_, err = svc.CompleteWorkout(context.Background(), userID, scheduled.ID, nil, nil, nil, nil)
	assert.NoError(t, err)
}

func TestCompleteWorkout_OwnershipIsolation(t *testing.T) {
	planRepo, _, _, svc := newScheduleFixture(t)
	owner := uuid.New()
	intruder := uuid.New()
	planID := createPlanFor(t, planRepo, owner)

	scheduled, err := svc.ScheduleWorkout(context.Background(), owner, planID, time.Now())
	require.NoError(t, err)

	_, err = svc.CompleteWorkout(context.Background(), intruder, scheduled.ID, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrScheduledWorkoutNotFound)
}

func TestGetScheduledWorkouts_FilterAndOrder(t *testing.T) {
	planRepo, _, _, svc := newScheduleFixture(t)
	userID := uuid.New()
	planID := createPlanFor(t, planRepo, userID)

	later, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	sooner, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	done, err := svc.ScheduleWorkout(context.Background(), userID, planID, time.Now())
	require.NoError(t, err)
	_, err = svc.CompleteWorkout(context.Background(), userID, done.ID, nil, nil, nil, nil)
	require.NoError(t, err)

	pending, err := svc.GetScheduledWorkouts(context.Background(), userID, false)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Ascending by scheduled time.
	assert.Equal(t, sooner.ID, pending[0].ID)
	assert.Equal(t, later.ID, pending[1].ID)
	require.NotNil(t, pending[0].WorkoutPlan)

	completed, err := svc.GetScheduledWorkouts(context.Background(), userID, true)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, done.ID, completed[0].ID)
	require.NotNil(t, completed[0].CompletedWorkout)
	assert.Equal(t, done.ID, completed[0].CompletedWorkout.ScheduledWorkoutID)
}
