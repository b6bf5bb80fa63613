package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request through the service logger.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		default:
			m.l.Debugf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}
