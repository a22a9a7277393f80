package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Scope())
	{
		api.POST("/complexity", h.Complexity)
		api.POST("/readiness", h.Readiness)
	}
}
