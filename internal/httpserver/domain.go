package httpserver

import (
	"context"

	"flowx/internal/middleware"
	profileHTTP "flowx/internal/profile/delivery/http"
	taskHTTP "flowx/internal/task/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupProfileDomain registers /api/v1/session and /api/v1/profile.
func (srv *HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := profileHTTP.New(srv.l, srv.profileUC, srv.taskUC)
	profileHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Profile domain registered")
}

// setupTaskDomain registers /api/v1/tasks, /api/v1/days and /api/v1/performance.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Task domain registered")
}
