package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ScheduleHandler serves the /schedule routes: scheduling, listing and
// completing workouts.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// --- Request Structs ---

type ScheduleWorkoutRequest struct {
	WorkoutPlanID string    `json:"workoutPlanId" binding:"required,uuid"`
	ScheduledFor  time.Time `json:"scheduledFor" binding:"required"`
}

// ExerciseResultRequest is one performed exercise in a completion payload.
type ExerciseResultRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required,uuid"`
	Sets       int      `json:"sets" binding:"required,gt=0"`
	Reps       int      `json:"reps" binding:"required,gt=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,gte=0"`
	Duration   *int     `json:"duration" binding:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}

type CompleteWorkoutRequest struct {
	ScheduledWorkoutID string                  `json:"scheduledWorkoutId" binding:"required,uuid"`
	Notes              *string                 `json:"notes"`
	Rating             *int                    `json:"rating" binding:"omitempty,min=1,max=5"`
	Duration           *int                    `json:"duration" binding:"omitempty,gte=0"`
	ExerciseResults    []ExerciseResultRequest `json:"exerciseResults" binding:"dive"`
}

// --- Handler Methods ---

// ScheduleWorkout creates a scheduled workout against an owned plan.
func (h *ScheduleHandler) ScheduleWorkout(c *gin.Context) {
	var req ScheduleWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	planID, _ := uuid.Parse(req.WorkoutPlanID)

	scheduled, err := h.scheduleService.ScheduleWorkout(c.Request.Context(), userID, planID, req.ScheduledFor)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		logrus.WithError(err).Error("schedule workout failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, scheduled)
}

// GetScheduledWorkouts lists scheduled workouts filtered by
// ?completed=true|false (default false), scheduled time ascending.
func (h *ScheduleHandler) GetScheduledWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	completed := c.Query("completed") == "true"

	workouts, err := h.scheduleService.GetScheduledWorkouts(c.Request.Context(), userID, completed)
	if err != nil {
		logrus.WithError(err).Error("get scheduled workouts failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// CompleteWorkout records the completion of a scheduled workout with its
// per-exercise results.
func (h *ScheduleHandler) CompleteWorkout(c *gin.Context) {
	var req CompleteWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}
	scheduledWorkoutID, _ := uuid.Parse(req.ScheduledWorkoutID)

	results := make([]service.ExerciseResultInput, len(req.ExerciseResults))
	for i, r := range req.ExerciseResults {
		exerciseID, _ := uuid.Parse(r.ExerciseID)
		results[i] = service.ExerciseResultInput{
			ExerciseID: exerciseID,
			Sets:       r.Sets,
			Reps:       r.Reps,
			Weight:     r.Weight,
			Duration:   r.Duration,
			Notes:      r.Notes,
		}
	}

	completed, err := h.scheduleService.CompleteWorkout(
		c.Request.Context(), userID, scheduledWorkoutID,
		req.Notes, req.Rating, req.Duration, results,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduledWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Scheduled workout not found")
		case errors.Is(err, service.ErrWorkoutAlreadyCompleted):
			abortWithError(c, http.StatusBadRequest, "Workout is already marked as completed")
		default:
			logrus.WithError(err).Error("complete workout failed")
			abortWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, completed)
}

// GetCompletedWorkouts lists the caller's completion history, newest first.
func (h *ScheduleHandler) GetCompletedWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	workouts, err := h.scheduleService.GetCompletedWorkouts(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("get completed workouts failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, workouts)
}
