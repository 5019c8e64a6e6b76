package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlan_Validation(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())
	userID := uuid.New()

	_, err := svc.CreatePlan(context.Background(), userID, "", nil, nil)
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.CreatePlan(context.Background(), userID, "Push Day", nil, []PlanExerciseInput{
		{ExerciseID: uuid.New(), Sets: 0, Reps: 10},
	})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.CreatePlan(context.Background(), userID, "Push Day", nil, []PlanExerciseInput{
		{ExerciseID: uuid.Nil, Sets: 3, Reps: 10},
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdatePlan_ReplacesExerciseList(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())
	userID := uuid.New()
	exerciseA := uuid.New()
	exerciseB := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), userID, "Push Day", nil, []PlanExerciseInput{
		{ExerciseID: exerciseA, Sets: 3, Reps: 10},
	})
	require.NoError(t, err)
	require.Len(t, plan.Exercises, 1)
	oldRowID := plan.Exercises[0].ID

	updated, err := svc.UpdatePlan(context.Background(), userID, plan.ID, "Push Day v2", nil, []PlanExerciseInput{
		{ExerciseID: exerciseB, Sets: 4, Reps: 8},
	})
	require.NoError(t, err)

	fetched, err := svc.GetPlanByID(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Exercises, 1)
	assert.Equal(t, exerciseB, fetched.Exercises[0].ExerciseID)
	assert.Equal(t, 4, fetched.Exercises[0].Sets)
	assert.Equal(t, 8, fetched.Exercises[0].Reps)
	assert.Equal(t, "Push Day v2", fetched.Name)

	// Delete-then-recreate: A's prescription is gone and row ids are not
	// stable across the update.
	for _, we := range fetched.Exercises {
		assert.NotEqual(t, exerciseA, we.ExerciseID)
		assert.NotEqual(t, oldRowID, we.ID)
	}
	assert.Equal(t, updated.Exercises[0].ExerciseID, fetched.Exercises[0].ExerciseID)
}

func TestPlan_OwnershipIsolation(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())
	owner := uuid.New()
	intruder := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), owner, "Leg Day", nil, nil)
	require.NoError(t, err)

	// Reads, updates and deletes by another user all come back as
	// not-found, never as an authorization error.
	_, err = svc.GetPlanByID(context.Background(), intruder, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.UpdatePlan(context.Background(), intruder, plan.ID, "Hijacked", nil, nil)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	err = svc.DeletePlan(context.Background(), intruder, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Owner still sees the plan untouched.
	fetched, err := svc.GetPlanByID(context.Background(), owner, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", fetched.Name)
}

func TestDeletePlan(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo())
	userID := uuid.New()

	plan, err := svc.CreatePlan(context.Background(), userID, "Full Body", nil, []PlanExerciseInput{
		{ExerciseID: uuid.New(), Sets: 5, Reps: 5},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(context.Background(), userID, plan.ID))

	_, err = svc.GetPlanByID(context.Background(), userID, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	err = svc.DeletePlan(context.Background(), userID, plan.ID)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestGetPlans_NewestFirst(t *testing.T) {
	repo := newFakePlanRepo()
	svc := NewPlanService(repo)
	userID := uuid.New()

	first, err := svc.CreatePlan(context.Background(), userID, "First", nil, nil)
	require.NoError(t, err)
	second, err := svc.CreatePlan(context.Background(), userID, "Second", nil, nil)
	require.NoError(t, err)

	// Force distinct creation times regardless of clock granularity.
	p := repo.plans[second.ID]
	p.CreatedAt = first.CreatedAt.Add(time.Second)
	repo.plans[second.ID] = p

	plans, err := svc.GetPlans(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Second", plans[0].Name)
	assert.Equal(t, "First", plans[1].Name)
}
