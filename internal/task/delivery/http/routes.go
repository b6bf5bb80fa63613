package http

import (
	"flowx/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// needs a logged-in profile.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RequireSession())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id/status", h.UpdateStatus)
		tasks.GET("/:id/countdown", h.Countdown)
		tasks.GET("/:id/countdown/stream", h.StreamCountdown)
		tasks.POST("/:id/voice-reminder", h.VoiceReminder)
		tasks.POST("/:id/voice-reminder/confirm", h.ConfirmVoiceReminder)
	}

	rg.GET("/days/:date", mw.RequireSession(), h.Day)
	rg.GET("/performance", mw.RequireSession(), h.Performance)
}
