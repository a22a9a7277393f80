package httpserver

import (
	"context"
	"fmt"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"localization-srv/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(ctx)
	srv.registerSystemRoutes()

	if err := srv.setupCoreDomains(ctx); err != nil {
		return fmt.Errorf("failed to setup core domains: %w", err)
	}

	r := srv.gin.Group("")
	srv.setupSegmentationDomain(ctx, r, mw)
	srv.setupScoringDomain(ctx, r, mw)
	if err := srv.setupTMDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup tm domain: %w", err)
	}
	if err := srv.setupAnalysisDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup analysis domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS())

	srv.l.Infof(ctx, "Middlewares registered for %s environment", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
