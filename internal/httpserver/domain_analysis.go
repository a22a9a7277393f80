package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"localization-srv/internal/analysis"
	analysisHTTP "localization-srv/internal/analysis/delivery/http"
	analysisKafkaProducer "localization-srv/internal/analysis/delivery/kafka/producer"
	analysisRabbitProducer "localization-srv/internal/analysis/delivery/rabbitmq/producer"
	analysisMinio "localization-srv/internal/analysis/repository/minio"
	analysisPostgre "localization-srv/internal/analysis/repository/postgre"
	analysisUsecase "localization-srv/internal/analysis/usecase"
	"localization-srv/internal/middleware"
)

func (srv *HTTPServer) setupAnalysisDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	cfg := analysis.DefaultConfig()
	if srv.config.MinIO.Bucket != "" {
		cfg.Bucket = srv.config.MinIO.Bucket
	}

	repo := analysisPostgre.New(srv.postgresDB, srv.l)
	archive := analysisMinio.New(srv.minioClient, cfg.Bucket, srv.l)

	var producer analysis.Producer
	if srv.kafkaProducer != nil {
		producer = analysisKafkaProducer.New(srv.l, srv.kafkaProducer)
	} else {
		srv.l.Warnf(ctx, "Kafka producer not configured, async analysis disabled")
	}

	var notifier analysis.Notifier
	if srv.rabbitMQ != nil {
		ch, err := srv.rabbitMQ.Channel()
		if err != nil {
			return fmt.Errorf("failed to open rabbitmq channel: %w", err)
		}
		notifier, err = analysisRabbitProducer.New(srv.l, ch, srv.config.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("failed to create analysis notifier: %w", err)
		}
	}

	uc := analysisUsecase.New(srv.l, repo, archive, producer, notifier, analysisUsecase.Pipeline{
		Segmentation:   srv.segmentationUC,
		TM:             srv.tmUC,
		Intelligence:   srv.intelligenceUC,
		Scoring:        srv.scoringUC,
		Recommendation: srv.recommendationUC,
	}, cfg)

	handler := analysisHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Analysis domain registered")
	return nil
}
