package main

import (
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/repository/postgres"
	"alcyxob/workout-tracker/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("starting workout tracker server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	if cfg.JWT.Secret == "" {
		logrus.Fatal("jwt.secret (JWT_SECRET) must be set")
	}

	// --- Database Connection ---
	pool, err := postgres.ConnectDB(context.Background(), cfg.Database.URL)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to PostgreSQL")
	}
	defer pool.Close()
	logrus.Info("database connection established")

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	planRepo := postgres.NewWorkoutPlanRepository(pool)
	scheduleRepo := postgres.NewScheduledWorkoutRepository(pool, planRepo)
	completedRepo := postgres.NewCompletedWorkoutRepository(pool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo)
	planService := service.NewPlanService(planRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, planRepo, completedRepo)
	reportService := service.NewReportService(completedRepo, exerciseRepo)

	// --- HTTP ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.JWT.Secret, authService, exerciseService, planService, scheduleService, reportService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logrus.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("listen and serve")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server exiting")
}
