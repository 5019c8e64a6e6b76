package api

import (
	"alcyxob/workout-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers into the Gin engine. Everything under
// /api except /api/auth requires a valid bearer token.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	planService service.PlanService,
	scheduleService service.ScheduleService,
	reportService service.ReportService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(planService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	reportHandler := NewReportHandler(reportService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiGroup.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			// Static segments before the :id param so they are not
			// swallowed by it.
			exerciseGroup.GET("/categories", exerciseHandler.GetCategories)
			exerciseGroup.GET("/muscle-groups", exerciseHandler.GetMuscleGroups)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkoutPlan)
			workoutGroup.GET("", workoutHandler.GetWorkoutPlans)
			workoutGroup.GET("/:id", workoutHandler.GetWorkoutPlanByID)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkoutPlan)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkoutPlan)
		}

		scheduleGroup := protected.Group("/schedule")
		{
			scheduleGroup.POST("", scheduleHandler.ScheduleWorkout)
			scheduleGroup.GET("", scheduleHandler.GetScheduledWorkouts)
			scheduleGroup.POST("/complete", scheduleHandler.CompleteWorkout)
			scheduleGroup.GET("/completed", scheduleHandler.GetCompletedWorkouts)
		}

		protected.GET("/reports", reportHandler.GenerateReport)
	}
}
