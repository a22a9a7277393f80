package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/analyses")
	api.Use(mw.Scope())
	{
		api.POST("", h.Analyze)
		api.POST("/async", h.Submit)
		api.GET("", h.List)
		api.GET("/:analysis_id", h.Get)
		api.GET("/:analysis_id/download", h.Download)
	}
}
