package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/coursereg/internal/app/controllers"
	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	requestController *controllers.RequestController,
	supervisorController *controllers.SupervisorController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/signup/student", authController.SignupStudent)
		auth.POST("/signup/supervisor", authController.SignupSupervisor)
		auth.POST("/login", authController.Login)
	}

	// --- Course catalog (public) ---
	router.GET("/courses", courseController.GetAllCourses)

	// --- Student request routes ---
	// The first wildcard is a student id on GET and a request id on
	// DELETE; gin requires one shared name per position, hence ":id".
	requests := router.Group("/requests")
	{
		requests.POST("", requestController.CreateRequest)
		requests.GET("/:id", requestController.GetStudentRequests)
		requests.DELETE("/:id/preferences/:course_id/:student_id", requestController.DeletePreference)
	}

	// --- Supervisor routes, gated by the role check ---
	supervisors := router.Group("/supervisors")
	supervisors.Use(authMiddleware.SupervisorRequired())
	{
		supervisors.GET("/:id/students", supervisorController.GetStudents)
		supervisors.GET("/:id/requests", supervisorController.GetPendingRequests)
		supervisors.GET("/:id/students/:student_id/requests", supervisorController.GetStudentRequests)
		supervisors.PATCH("/:id/requests/:request_id/courses/:course_id/status", supervisorController.UpdatePreferenceStatus)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Unknown paths get the same message shape as every other error
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, dto.NewMessageResponse("Not found"))
	})
}
