package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler holds the exercise catalog service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ListExercises returns the catalog, optionally filtered by ?category=
// and/or ?muscleGroup=.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	category := c.Query("category")
	muscleGroup := c.Query("muscleGroup")

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), category, muscleGroup)
	if err != nil {
		logrus.WithError(err).Error("list exercises failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// GetExerciseByID returns a single catalog entry.
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
			return
		}
		logrus.WithError(err).Error("get exercise failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// GetCategories returns the distinct exercise categories.
func (h *ExerciseHandler) GetCategories(c *gin.Context) {
	categories, err := h.exerciseService.GetCategories(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("get categories failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetMuscleGroups returns the distinct non-null muscle groups.
func (h *ExerciseHandler) GetMuscleGroups(c *gin.Context) {
	muscleGroups, err := h.exerciseService.GetMuscleGroups(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("get muscle groups failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, muscleGroups)
}
