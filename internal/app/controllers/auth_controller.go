package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/app/services"
	"github.com/oguzk/coursereg/internal/middleware"
)

// AuthController handles signup and login operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// SignupStudent handles student registration
// @Summary Register a student
// @Description Creates a student account assigned to the default supervisor
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Student information"
// @Success 201 {object} dto.SignupResponse "Student created"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate email"
// @Router /auth/signup/student [post]
func (c *AuthController) SignupStudent(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("email, fullName, password are required"))
		return
	}

	user, err := c.authService.RegisterStudent(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", user.Email).Int64("studentID", user.ID).Msg("Student signed up")
	ctx.JSON(http.StatusCreated, dto.SignupResponse{User: *user})
}

// SignupSupervisor handles supervisor registration
// @Summary Register a supervisor
// @Description Creates a supervisor account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Supervisor information"
// @Success 201 {object} dto.SignupResponse "Supervisor created"
// @Failure 400 {object} dto.MessageResponse "Missing fields or duplicate email"
// @Router /auth/signup/supervisor [post]
func (c *AuthController) SignupSupervisor(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("email, fullName, password are required"))
		return
	}

	user, err := c.authService.RegisterSupervisor(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Supervisor signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", user.Email).Int64("supervisorID", user.ID).Msg("Supervisor signed up")
	ctx.JSON(http.StatusCreated, dto.SignupResponse{User: *user})
}

// Login handles credential checks for both account kinds
// @Summary Log in
// @Description Checks credentials against students first, then supervisors
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse "Logged in"
// @Failure 400 {object} dto.MessageResponse "Missing fields"
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Email and password are required"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("User logged in")
	ctx.JSON(http.StatusOK, user)
}
