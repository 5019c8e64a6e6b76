package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WorkoutHandler holds the plan service dependency and serves the
// /workouts routes (workout plan CRUD).
type WorkoutHandler struct {
	planService service.PlanService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(planService service.PlanService) *WorkoutHandler {
	return &WorkoutHandler{planService: planService}
}

// --- Request Structs ---

// PlanExerciseRequest is one prescribed exercise in a plan payload.
type PlanExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required,uuid"`
	Sets       int      `json:"sets" binding:"required,gt=0"`
	Reps       int      `json:"reps" binding:"required,gt=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,gte=0"`
	Duration   *int     `json:"duration" binding:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}

type WorkoutPlanRequest struct {
	Name        string                `json:"name" binding:"required"`
	Description *string               `json:"description"`
	Exercises   []PlanExerciseRequest `json:"exercises" binding:"dive"`
}

// --- Handler Methods ---

// CreateWorkoutPlan creates a plan with its prescribed exercises.
func (h *WorkoutHandler) CreateWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), userID, req.Name, req.Description, mapPlanExercises(req.Exercises))
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.WithError(err).Error("create workout plan failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetWorkoutPlans lists the caller's plans, newest first.
func (h *WorkoutHandler) GetWorkoutPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return
	}

	plans, err := h.planService.GetPlans(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("get workout plans failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetWorkoutPlanByID returns one plan, 404 when absent or foreign-owned.
func (h *WorkoutHandler) GetWorkoutPlanByID(c *gin.Context) {
	userID, planID, ok := h.planParams(c)
	if !ok {
		return
	}

	plan, err := h.planService.GetPlanByID(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		logrus.WithError(err).Error("get workout plan failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// UpdateWorkoutPlan replaces the plan's details and its whole exercise list.
func (h *WorkoutHandler) UpdateWorkoutPlan(c *gin.Context) {
	userID, planID, ok := h.planParams(c)
	if !ok {
		return
	}

	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), userID, planID, req.Name, req.Description, mapPlanExercises(req.Exercises))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			logrus.WithError(err).Error("update workout plan failed")
			abortWithError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeleteWorkoutPlan removes the plan and its prescriptions.
func (h *WorkoutHandler) DeleteWorkoutPlan(c *gin.Context) {
	userID, planID, ok := h.planParams(c)
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout plan not found")
			return
		}
		logrus.WithError(err).Error("delete workout plan failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout plan deleted successfully"})
}

// planParams extracts the authenticated user id and the :id path param.
func (h *WorkoutHandler) planParams(c *gin.Context) (userID, planID uuid.UUID, ok bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token")
		return uuid.Nil, uuid.Nil, false
	}
	planID, err = uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout plan ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, planID, true
}

func mapPlanExercises(reqs []PlanExerciseRequest) []service.PlanExerciseInput {
	inputs := make([]service.PlanExerciseInput, len(reqs))
	for i, r := range reqs {
		// Parse error impossible here, binding already validated the uuid.
		exerciseID, _ := uuid.Parse(r.ExerciseID)
		inputs[i] = service.PlanExerciseInput{
			ExerciseID: exerciseID,
			Sets:       r.Sets,
			Reps:       r.Reps,
			Weight:     r.Weight,
			Duration:   r.Duration,
			Notes:      r.Notes,
		}
	}
	return inputs
}
