package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"localization-srv/internal/middleware"
	scoringHTTP "localization-srv/internal/scoring/delivery/http"
	segmentationHTTP "localization-srv/internal/segmentation/delivery/http"
)

func (srv *HTTPServer) setupSegmentationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := segmentationHTTP.New(srv.l, srv.segmentationUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Segmentation domain registered")
}

func (srv *HTTPServer) setupScoringDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) {
	handler := scoringHTTP.New(srv.l, srv.scoringUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Scoring domain registered")
}
