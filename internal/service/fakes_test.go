package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory implementations of the repository interfaces, mimicking the
// PostgreSQL driver's semantics (ownership predicates, sentinel errors,
// all-or-nothing completion).

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return uuid.Nil, repository.ErrDuplicate
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = *user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

type fakeExerciseRepo struct {
	mu        sync.Mutex
	exercises map[uuid.UUID]domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: map[uuid.UUID]domain.Exercise{}}
}

func (f *fakeExerciseRepo) add(name, category string, muscleGroup *string) domain.Exercise {
	f.mu.Lock()
	defer f.mu.Unlock()
	ex := domain.Exercise{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		MuscleGroup: muscleGroup,
		CreatedAt:   time.Now().UTC(),
	}
	f.exercises[ex.ID] = ex
	return ex
}

func matchesFilter(ex domain.Exercise, category, muscleGroup string) bool {
	if category != "" && ex.Category != category {
		return false
	}
	if muscleGroup != "" && (ex.MuscleGroup == nil || *ex.MuscleGroup != muscleGroup) {
		return false
	}
	return true
}

func (f *fakeExerciseRepo) List(_ context.Context, category, muscleGroup string) ([]domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Exercise{}
	for _, ex := range f.exercises {
		if matchesFilter(ex, category, muscleGroup) {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeExerciseRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ex, ok := f.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := ex
	return &out, nil
}

func (f *fakeExerciseRepo) GetByIDs(_ context.Context, ids []uuid.UUID, category, muscleGroup string) ([]domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Exercise{}
	for _, id := range ids {
		ex, ok := f.exercises[id]
		if ok && matchesFilter(ex, category, muscleGroup) {
			out = append(out, ex)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeExerciseRepo) Categories(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, ex := range f.exercises {
		if !seen[ex.Category] {
			seen[ex.Category] = true
			out = append(out, ex.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeExerciseRepo) MuscleGroups(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, ex := range f.exercises {
		if ex.MuscleGroup != nil && !seen[*ex.MuscleGroup] {
			seen[*ex.MuscleGroup] = true
			out = append(out, *ex.MuscleGroup)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeExerciseRepo) Upsert(_ context.Context, ex *domain.Exercise) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	f.exercises[ex.ID] = *ex
	return ex.ID, nil
}

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[uuid.UUID]domain.WorkoutPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uuid.UUID]domain.WorkoutPlan{}}
}

func (f *fakePlanRepo) Create(_ context.Context, plan *domain.WorkoutPlan) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan.ID = uuid.New()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	for i := range plan.Exercises {
		plan.Exercises[i].ID = uuid.New()
		plan.Exercises[i].WorkoutPlanID = plan.ID
	}
	f.plans[plan.ID] = clonePlan(*plan)
	return plan.ID, nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.WorkoutPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok || plan.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := clonePlan(plan)
	return &out, nil
}

func (f *fakePlanRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]domain.WorkoutPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.WorkoutPlan{}
	for _, plan := range f.plans {
		if plan.UserID == userID {
			out = append(out, clonePlan(plan))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePlanRepo) Update(_ context.Context, plan *domain.WorkoutPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.plans[plan.ID]
	if !ok || existing.UserID != plan.UserID {
		return repository.ErrNotFound
	}
	existing.Name = plan.Name
	existing.Description = plan.Description
	existing.UpdatedAt = time.Now().UTC()
	// Delete-then-recreate: old prescription rows are gone, new ids minted.
	existing.Exercises = make([]domain.WorkoutExercise, len(plan.Exercises))
	for i, we := range plan.Exercises {
		we.ID = uuid.New()
		we.WorkoutPlanID = plan.ID
		existing.Exercises[i] = we
	}
	f.plans[plan.ID] = existing
	return nil
}

func (f *fakePlanRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	plan, ok := f.plans[id]
	if !ok || plan.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

func clonePlan(plan domain.WorkoutPlan) domain.WorkoutPlan {
	out := plan
	out.Exercises = append([]domain.WorkoutExercise(nil), plan.Exercises...)
	return out
}

type fakeScheduleRepo struct {
	mu          sync.Mutex
	schedules   map[uuid.UUID]domain.ScheduledWorkout
	completions map[uuid.UUID]domain.CompletedWorkout // keyed by scheduled workout id
	plans       *fakePlanRepo

	// When set, Complete fails after the flag check, before any state
	// change, standing in for a mid-transaction failure that rolls back.
	failCompletion error
}

func newFakeScheduleRepo(plans *fakePlanRepo) *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules:   map[uuid.UUID]domain.ScheduledWorkout{},
		completions: map[uuid.UUID]domain.CompletedWorkout{},
		plans:       plans,
	}
}

func (f *fakeScheduleRepo) Create(_ context.Context, sw *domain.ScheduledWorkout) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sw.ID = uuid.New()
	sw.Completed = false
	sw.CreatedAt = time.Now().UTC()
	f.schedules[sw.ID] = *sw
	return sw.ID, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.ScheduledWorkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sw, ok := f.schedules[id]
	if !ok || sw.UserID != userID {
		return nil, repository.ErrNotFound
	}
	out := sw
	return &out, nil
}

func (f *fakeScheduleRepo) GetByUserAndCompleted(ctx context.Context, userID uuid.UUID, completed bool) ([]domain.ScheduledWorkout, error) {
	f.mu.Lock()
	items := []domain.ScheduledWorkout{}
	for _, sw := range f.schedules {
		if sw.UserID == userID && sw.Completed == completed {
			out := sw
			if cw, ok := f.completions[sw.ID]; ok && completed {
				c := cw
				out.CompletedWorkout = &c
			}
			items = append(items, out)
		}
	}
	f.mu.Unlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ScheduledFor.Before(items[j].ScheduledFor) })
	for i := range items {
		plan, err := f.plans.GetByID(ctx, items[i].WorkoutPlanID, userID)
		if err != nil {
			return nil, err
		}
		items[i].WorkoutPlan = plan
	}
	return items, nil
}

func (f *fakeScheduleRepo) Complete(_ context.Context, cw *domain.CompletedWorkout, results []domain.ExerciseResult) (*domain.CompletedWorkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sw, ok := f.schedules[cw.ScheduledWorkoutID]
	if !ok || sw.UserID != cw.UserID {
		return nil, repository.ErrNotFound
	}
	if sw.Completed {
		return nil, repository.ErrAlreadyCompleted
	}
	if f.failCompletion != nil {
		// Nothing written, nothing to roll back.
		return nil, f.failCompletion
	}

	sw.Completed = true
	f.schedules[sw.ID] = sw

	cw.ID = uuid.New()
	if cw.CompletedAt.IsZero() {
		cw.CompletedAt = time.Now().UTC()
	}
	cw.ExerciseResults = make([]domain.ExerciseResult, 0, len(results))
	for _, res := range results {
		res.ID = uuid.New()
		res.CompletedWorkoutID = cw.ID
		cw.ExerciseResults = append(cw.ExerciseResults, res)
	}
	f.completions[sw.ID] = *cw
	return cw, nil
}

type fakeCompletedRepo struct {
	mu       sync.Mutex
	workouts []domain.CompletedWorkout
}

func newFakeCompletedRepo() *fakeCompletedRepo {
	return &fakeCompletedRepo{}
}

func (f *fakeCompletedRepo) add(cw domain.CompletedWorkout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cw.ID == uuid.Nil {
		cw.ID = uuid.New()
	}
	f.workouts = append(f.workouts, cw)
}

func (f *fakeCompletedRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.CompletedWorkout, error) {
	return f.GetByUserInRange(ctx, userID, nil, nil)
}

func (f *fakeCompletedRepo) GetByUserInRange(_ context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CompletedWorkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.CompletedWorkout{}
	for _, cw := range f.workouts {
		if cw.UserID != userID {
			continue
		}
		if from != nil && cw.CompletedAt.Before(*from) {
			continue
		}
		if to != nil && cw.CompletedAt.After(*to) {
			continue
		}
		out = append(out, cw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

var errStorageFailure = errors.New("storage failure")
