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

// SupervisorController handles the supervisor-facing views and adjudication
type SupervisorController struct {
	supervisorService services.SupervisorService
	logger            zerolog.Logger
}

// NewSupervisorController creates a new SupervisorController
func NewSupervisorController(supervisorService services.SupervisorService, logger zerolog.Logger) *SupervisorController {
	return &SupervisorController{
		supervisorService: supervisorService,
		logger:            logger,
	}
}

// GetStudents lists the supervisor's student roster
// @Summary List supervised students
// @Description Returns the supervisor's students with their latest submission timestamp
// @Tags supervisors
// @Produce json
// @Param id path int true "Supervisor ID"
// @Success 200 {array} models.StudentRosterRow "Roster retrieved"
// @Failure 403 {object} dto.MessageResponse "Admin access only"
// @Router /supervisors/{id}/students [get]
func (c *SupervisorController) GetStudents(ctx *gin.Context) {
	supervisorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid supervisor id"))
		return
	}

	roster, err := c.supervisorService.GetStudentRoster(ctx.Request.Context(), supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, roster)
}

// GetPendingRequests lists pending preferences from the supervisor's students
// @Summary Pending adjudication queue
// @Description Returns every pending preference of students under this supervisor
// @Tags supervisors
// @Produce json
// @Param id path int true "Supervisor ID"
// @Success 200 {array} models.SupervisorQueueRow "Queue retrieved"
// @Failure 403 {object} dto.MessageResponse "Admin access only"
// @Router /supervisors/{id}/requests [get]
func (c *SupervisorController) GetPendingRequests(ctx *gin.Context) {
	supervisorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid supervisor id"))
		return
	}

	queue, err := c.supervisorService.GetPendingRequests(ctx.Request.Context(), supervisorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, queue)
}

// GetStudentRequests lists one supervised student's request rows
// @Summary One student's requests
// @Description Returns the flat request rows of a single supervised student
// @Tags supervisors
// @Produce json
// @Param id path int true "Supervisor ID"
// @Param student_id path int true "Student ID"
// @Success 200 {array} models.PreferenceRow "Rows retrieved"
// @Failure 403 {object} dto.MessageResponse "Admin access only"
// @Router /supervisors/{id}/students/{student_id}/requests [get]
func (c *SupervisorController) GetStudentRequests(ctx *gin.Context) {
	supervisorID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid supervisor id"))
		return
	}

	studentID, err := strconv.ParseInt(ctx.Param("student_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid student id"))
		return
	}

	rows, err := c.supervisorService.GetStudentRequests(ctx.Request.Context(), supervisorID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// UpdatePreferenceStatus adjudicates one course inside a request
// @Summary Update a preference's status
// @Description Moves one preference to pending, need_feedback or approved
// @Tags supervisors
// @Accept json
// @Produce json
// @Param id path int true "Supervisor ID"
// @Param request_id path int true "Request ID"
// @Param course_id path int true "Course ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.RequestResponse "Updated rows"
// @Failure 400 {object} dto.MessageResponse "Invalid status value"
// @Failure 404 {object} dto.MessageResponse "Course not found in request"
// @Router /supervisors/{id}/requests/{request_id}/courses/{course_id}/status [patch]
func (c *SupervisorController) UpdatePreferenceStatus(ctx *gin.Context) {
	requestID, err := strconv.ParseInt(ctx.Param("request_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request id"))
		return
	}

	courseID, err := strconv.ParseInt(ctx.Param("course_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid course id"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("status is required"))
		return
	}

	rows, err := c.supervisorService.UpdatePreferenceStatus(ctx.Request.Context(), requestID, courseID, req.Status)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("requestID", requestID).
			Int64("courseID", courseID).
			Str("status", req.Status).
			Msg("Status update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("requestID", requestID).
		Int64("courseID", courseID).
		Str("status", req.Status).
		Msg("Preference status updated")
	ctx.JSON(http.StatusOK, dto.RequestResponse{Request: rows})
}
