package main

import (
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/postgres"
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the exercise catalog (idempotent upsert) and, optionally, demo
// data for local development.
//
//	go run ./cmd/seed -init        # also apply scripts/schema.sql first
//	go run ./cmd/seed -demo        # also create a demo user with history
func main() {
	initSchema := flag.Bool("init", false, "apply the schema file before seeding")
	demo := flag.Bool("demo", false, "seed a demo user with plans, schedules and completions")
	schemaPath := flag.String("schema", "scripts/schema.sql", "path to the schema file used by -init")
	flag.Parse()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	ctx := context.Background()
	pool, err := postgres.ConnectDB(ctx, cfg.Database.URL)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to PostgreSQL")
	}
	defer pool.Close()

	if *initSchema {
		schema, err := os.ReadFile(*schemaPath)
		if err != nil {
			logrus.WithError(err).Fatal("read schema file")
		}
		if _, err := pool.Exec(ctx, string(schema)); err != nil {
			logrus.WithError(err).Fatal("apply schema")
		}
		logrus.Info("schema applied")
	}

	exerciseRepo := postgres.NewExerciseRepository(pool)
	for i := range exerciseCatalog {
		if _, err := exerciseRepo.Upsert(ctx, &exerciseCatalog[i]); err != nil {
			logrus.WithError(err).WithField("exercise", exerciseCatalog[i].Name).Fatal("upsert exercise")
		}
	}
	logrus.WithField("count", len(exerciseCatalog)).Info("exercise catalog seeded")

	if !*demo {
		return
	}

	userRepo := postgres.NewUserRepository(pool)
	planRepo := postgres.NewWorkoutPlanRepository(pool)
	scheduleRepo := postgres.NewScheduledWorkoutRepository(pool, planRepo)
	if err := seedDemoData(ctx, userRepo, exerciseRepo, planRepo, scheduleRepo); err != nil {
		logrus.WithError(err).Fatal("seed demo data")
	}
	logrus.Info("demo data seeded")
}

// seedDemoData creates one generated user with a couple of plans, schedules
// workouts against them and completes some with results, so lists and
// reports have data out of the box.
func seedDemoData(
	ctx context.Context,
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	planRepo repository.WorkoutPlanRepository,
	scheduleRepo repository.ScheduledWorkoutRepository,
) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &domain.User{
		Name:         gofakeit.Name(),
		Email:        fmt.Sprintf("demo+%d@example.com", time.Now().Unix()),
		PasswordHash: string(hash),
	}
	userID, err := userRepo.Create(ctx, user)
	if err != nil {
		return fmt.Errorf("create demo user: %w", err)
	}
	logrus.WithField("email", user.Email).Info("demo user created (password: demo-password)")

	catalog, err := exerciseRepo.List(ctx, "", "")
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return fmt.Errorf("exercise catalog is empty")
	}

	for p := 0; p < 3; p++ {
		plan := &domain.WorkoutPlan{
			UserID:      userID,
			Name:        fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), "Plan"),
			Description: strptr(gofakeit.Sentence(8)),
		}
		for e := 0; e < 3+rand.Intn(3); e++ {
			ex := catalog[rand.Intn(len(catalog))]
			weight := 20 + rand.Float64()*60
			plan.Exercises = append(plan.Exercises, domain.WorkoutExercise{
				ExerciseID: ex.ID,
				Sets:       3 + rand.Intn(2),
				Reps:       8 + rand.Intn(5),
				Weight:     &weight,
			})
		}
		planID, err := planRepo.Create(ctx, plan)
		if err != nil {
			return fmt.Errorf("create demo plan: %w", err)
		}

		// Two past (completed) and one future schedule per plan.
		for s := 0; s < 3; s++ {
			when := time.Now().AddDate(0, 0, -7*(s+1))
			if s == 2 {
				when = time.Now().AddDate(0, 0, 3)
			}
			sw := &domain.ScheduledWorkout{
				WorkoutPlanID: planID,
				UserID:        userID,
				ScheduledFor:  when,
			}
			swID, err := scheduleRepo.Create(ctx, sw)
			if err != nil {
				return fmt.Errorf("create demo schedule: %w", err)
			}
			if s == 2 {
				continue
			}

			rating := 3 + rand.Intn(3)
			duration := 30 + rand.Intn(45)
			cw := &domain.CompletedWorkout{
				ScheduledWorkoutID: swID,
				UserID:             userID,
				Notes:              strptr(gofakeit.Sentence(6)),
				Rating:             &rating,
				Duration:           &duration,
				CompletedAt:        when.Add(time.Hour),
			}
			results := make([]domain.ExerciseResult, 0, len(plan.Exercises))
			for _, we := range plan.Exercises {
				results = append(results, domain.ExerciseResult{
					ExerciseID: we.ExerciseID,
					Sets:       we.Sets,
					Reps:       we.Reps,
					Weight:     we.Weight,
				})
			}
			if _, err := scheduleRepo.Complete(ctx, cw, results); err != nil {
				return fmt.Errorf("complete demo schedule: %w", err)
			}
		}
	}
	return nil
}
