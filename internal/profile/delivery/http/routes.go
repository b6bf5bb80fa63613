package http

import (
	"flowx/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	session := rg.Group("/session")
	{
		session.POST("/login", h.Login)
		session.POST("/logout", h.Logout)
	}

	p := rg.Group("/profile", mw.RequireSession())
	{
		p.GET("", h.Detail)
		p.POST("/onboarding", h.Onboarding)
		p.GET("/suggestions", h.Suggestions)
	}
}
