package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/tm")
	api.Use(mw.Scope())
	{
		api.POST("/matches", h.Match)
		api.POST("/units", h.Upsert)
		api.POST("/import", h.Import)
	}
}
