package http

import (
	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
	"localization-srv/internal/segmentation"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/log"
)

// Handler is the segmentation HTTP handler.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      segmentation.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc segmentation.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
