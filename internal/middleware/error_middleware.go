package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto the HTTP error taxonomy.
// Unclassified errors never leak their detail to the client; they are logged
// where they occur and surface here as a fixed message.
func HandleAPIError(c *gin.Context, err error) {
	message := messageFor(err)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewMessageResponse(message))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.NewMessageResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewMessageResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewMessageResponse("Admin access only"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewMessageResponse(message))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewMessageResponse(message))
	default:
		c.JSON(500, dto.NewMessageResponse("Internal server error"))
	}
}

// messageFor extracts the user-facing message carried by a CustomError
func messageFor(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return err.Error()
}
