package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzk/coursereg/internal/app/auth"
	"github.com/oguzk/coursereg/internal/app/models/dto"
)

// AuthMiddleware gates supervisor-only routes behind an Authenticator
type AuthMiddleware struct {
	authenticator auth.Authenticator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authenticator auth.Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

// SupervisorRequired rejects requests whose asserted role is not supervisor
func (m *AuthMiddleware) SupervisorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authenticator.Authorize(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewMessageResponse("Admin access only"))
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("role", identity.Role)

		c.Next()
	}
}
