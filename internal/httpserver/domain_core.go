package httpserver

import (
	"context"

	"localization-srv/internal/embedding"
	embeddingRepo "localization-srv/internal/embedding/repository/redis"
	embeddingUsecase "localization-srv/internal/embedding/usecase"
	"localization-srv/internal/intelligence"
	intelligencePostgre "localization-srv/internal/intelligence/repository/postgre"
	intelligenceUsecase "localization-srv/internal/intelligence/usecase"
	"localization-srv/internal/recommendation"
	recommendationUsecase "localization-srv/internal/recommendation/usecase"
	"localization-srv/internal/scoring"
	scoringUsecase "localization-srv/internal/scoring/usecase"
	segmentationUsecase "localization-srv/internal/segmentation/usecase"
	"localization-srv/pkg/gemini"
)

// setupCoreDomains builds the usecases shared by several handlers.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	if srv.voyageClient != nil {
		embeddingCacheRepo := embeddingRepo.New(srv.redisClient, srv.l)
		srv.embeddingUC = embeddingUsecase.New(embeddingCacheRepo, srv.voyageClient, embedding.Config{Namespace: srv.config.Voyage.Model}, srv.l)
	}

	srv.segmentationUC = segmentationUsecase.New(srv.l)
	srv.scoringUC = scoringUsecase.New(srv.l, scoring.DefaultConfig())
	srv.recommendationUC = recommendationUsecase.New(srv.l, recommendation.DefaultConfig())

	intelligenceCfg := intelligence.DefaultConfig()
	intelligenceCfg.LLMEnabled = srv.config.Intelligence.LLMEnabled
	var llm gemini.IGemini
	if intelligenceCfg.LLMEnabled {
		llm = srv.geminiClient
	}
	srv.intelligenceUC = intelligenceUsecase.New(
		srv.l,
		intelligencePostgre.New(srv.postgresDB, srv.l),
		llm,
		intelligenceCfg,
	)

	srv.l.Infof(ctx, "Core domains (Embedding, Segmentation, Scoring, Intelligence, Recommendation) initialized")
	return nil
}
