package middleware

import (
	"github.com/gin-gonic/gin"

	"localization-srv/pkg/discord"
	"localization-srv/pkg/log"
	"localization-srv/pkg/response"
)

// Recovery recovers from panics, logs them and reports them to Discord.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "middleware.Recovery: panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				var reporter response.Reporter
				if discordClient != nil {
					reporter = discordClient
				}
				response.PanicError(c, err, reporter)
			}
		}()
		c.Next()
	}
}
