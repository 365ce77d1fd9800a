package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/coursereg/internal/app/services"
	"github.com/oguzk/coursereg/internal/middleware"
)

// CourseController handles course catalog reads
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists the course catalog
// @Summary List courses
// @Description Retrieves all selectable courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses retrieved"
// @Failure 500 {object} dto.MessageResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}
