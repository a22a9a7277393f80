package middleware

import (
	"github.com/gin-gonic/gin"

	"localization-srv/pkg/scope"
)

// Scope decodes the optional X-Scope header into the request context.
// A malformed header is logged and treated as anonymous.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sc, err := scope.ParseScopeHeader(c.GetHeader(scope.HeaderName))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Scope: invalid %s header: %v", scope.HeaderName, err)
			sc = scope.Anonymous()
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
