package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/app/services"
	"github.com/oguzk/coursereg/internal/middleware"
)

// RequestController handles the student-facing request lifecycle
type RequestController struct {
	requestService services.RequestService
	logger         zerolog.Logger
}

// NewRequestController creates a new RequestController
func NewRequestController(requestService services.RequestService, logger zerolog.Logger) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

// CreateRequest replaces a student's preference submission
// @Summary Submit course preferences
// @Description Replaces the student's request with exactly six course preferences
// @Tags requests
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Submission"
// @Success 201 {object} dto.RequestResponse "Request created"
// @Failure 400 {object} dto.MessageResponse "Wrong course count or create/replace failed"
// @Router /requests [post]
func (c *RequestController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("student_id and exactly 6 courses are required"))
		return
	}

	rows, err := c.requestService.ReplacePreferences(ctx.Request.Context(), req.StudentID, req.Preferences)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", req.StudentID).Msg("Create request failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("studentID", req.StudentID).Msg("Request replaced")
	ctx.JSON(http.StatusCreated, dto.RequestResponse{Request: rows})
}

// GetStudentRequests lists a student's request rows
// @Summary Get a student's requests
// @Description Returns flat rows, one per course within a request
// @Tags requests
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {array} models.PreferenceRow "Rows retrieved"
// @Failure 400 {object} dto.MessageResponse "Invalid student ID"
// @Router /requests/{student_id} [get]
func (c *RequestController) GetStudentRequests(ctx *gin.Context) {
	// The shared first wildcard of the /requests tree is named "id"; here
	// it carries a student id.
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student id"))
		return
	}

	rows, err := c.requestService.GetStudentRequests(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// DeletePreference removes one non-approved course from a request
// @Summary Delete one preference
// @Description Deletes a single course from the student's request unless it was approved
// @Tags requests
// @Produce json
// @Param request_id path int true "Request ID"
// @Param course_id path int true "Course ID"
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.RequestResponse "Remaining rows"
// @Failure 404 {object} dto.MessageResponse "Course not found"
// @Failure 409 {object} dto.MessageResponse "Cannot delete approved course"
// @Router /requests/{request_id}/preferences/{course_id}/{student_id} [delete]
func (c *RequestController) DeletePreference(ctx *gin.Context) {
	// Same wildcard name as the GET route; here it carries a request id.
	requestID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request id"))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid course id"))
		return
	}

	studentID, err := strconv.ParseInt(ctx.Param("student_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student id"))
		return
	}

	rows, err := c.requestService.DeletePreference(ctx.Request.Context(), requestID, courseID, studentID)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("requestID", requestID).
			Int64("courseID", courseID).
			Msg("Delete preference failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RequestResponse{Request: rows})
}
