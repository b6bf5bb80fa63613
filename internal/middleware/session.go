package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"flowx/internal/profile"
	"flowx/pkg/response"
)

// RequireSession rejects requests with 401 while nobody is logged in.
// The username is a label, so this guards flow, not access.
func (m Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, err := m.profiles.Current(ctx); err != nil {
			if errors.Is(err, profile.ErrNotLoggedIn) {
				response.Unauthorized(c, "login required")
				return
			}
			m.l.Errorf(ctx, "middleware.RequireSession: %v", err)
			response.InternalError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
