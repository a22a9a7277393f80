package consumer

import (
	"context"
	"errors"
	"fmt"

	"localization-srv/internal/analysis"
	analysisConsumer "localization-srv/internal/analysis/delivery/kafka/consumer"
	analysisRabbitProducer "localization-srv/internal/analysis/delivery/rabbitmq/producer"
	analysisMinio "localization-srv/internal/analysis/repository/minio"
	analysisPostgre "localization-srv/internal/analysis/repository/postgre"
	analysisUsecase "localization-srv/internal/analysis/usecase"
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
	"localization-srv/internal/tm"
	tmRepository "localization-srv/internal/tm/repository"
	tmComposite "localization-srv/internal/tm/repository/composite"
	tmElasticsearch "localization-srv/internal/tm/repository/elasticsearch"
	tmQdrant "localization-srv/internal/tm/repository/qdrant"
	tmRedis "localization-srv/internal/tm/repository/redis"
	tmUsecase "localization-srv/internal/tm/usecase"
	"localization-srv/pkg/gemini"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	analysisConsumer *analysisConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	tmUC, err := srv.setupTM()
	if err != nil {
		return nil, err
	}

	intelligenceCfg := intelligence.DefaultConfig()
	intelligenceCfg.LLMEnabled = srv.config.Intelligence.LLMEnabled
	var llm gemini.IGemini
	if intelligenceCfg.LLMEnabled {
		llm = srv.geminiClient
	}

	cfg := analysis.DefaultConfig()
	if srv.config.MinIO.Bucket != "" {
		cfg.Bucket = srv.config.MinIO.Bucket
	}

	var notifier analysis.Notifier
	if srv.rabbitMQ != nil {
		ch, err := srv.rabbitMQ.Channel()
		if err != nil {
			return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
		}
		if notifier, err = analysisRabbitProducer.New(srv.l, ch, srv.config.RabbitMQ.Exchange); err != nil {
			return nil, fmt.Errorf("failed to create analysis notifier: %w", err)
		}
	}

	// The worker only processes requests, so it has no producer.
	analysisUC := analysisUsecase.New(
		srv.l,
		analysisPostgre.New(srv.postgresDB, srv.l),
		analysisMinio.New(srv.minioClient, cfg.Bucket, srv.l),
		nil,
		notifier,
		analysisUsecase.Pipeline{
			Segmentation:   segmentationUsecase.New(srv.l),
			TM:             tmUC,
			Intelligence:   intelligenceUsecase.New(srv.l, intelligencePostgre.New(srv.postgresDB, srv.l), llm, intelligenceCfg),
			Scoring:        scoringUsecase.New(srv.l, scoring.DefaultConfig()),
			Recommendation: recommendationUsecase.New(srv.l, recommendation.DefaultConfig()),
		},
		cfg,
	)

	analysisCons, err := analysisConsumer.New(analysisConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     analysisUC,
		Discord:     srv.discord,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analysis domain initialized")

	return &domainConsumers{
		analysisConsumer: analysisCons,
	}, nil
}

func (srv *ConsumerServer) setupTM() (tm.UseCase, error) {
	var stores []tmRepository.Store
	if srv.config.TM.SemanticSearch {
		embeddingUC := embeddingUsecase.New(
			embeddingRepo.New(srv.redisClient, srv.l),
			srv.voyageClient,
			embedding.Config{Namespace: srv.config.Voyage.Model},
			srv.l,
		)
		stores = append(stores, tmQdrant.New(srv.qdrantClient, embeddingUC, srv.config.Qdrant.Collection, srv.l))
	}
	if srv.config.TM.LexicalSearch {
		stores = append(stores, tmElasticsearch.New(srv.elasticsearchClient, srv.config.Elasticsearch.Index, srv.l))
	}
	if len(stores) == 0 {
		return nil, errors.New("no translation memory store enabled")
	}

	cfg := tm.DefaultConfig()
	t := srv.config.TM
	if t.MatchTimeout > 0 {
		cfg.MatchTimeout = t.MatchTimeout
	}
	if t.MatchLimit > 0 {
		cfg.MatchLimit = t.MatchLimit
	}
	if t.Concurrency > 0 {
		cfg.Concurrency = t.Concurrency
	}
	if t.CacheTTL > 0 {
		cfg.CacheTTL = t.CacheTTL
	}

	return tmUsecase.New(srv.l, tmComposite.New(srv.l, stores...), tmRedis.New(srv.redisClient, srv.l), cfg), nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analysisConsumer.ConsumeAnalysisRequested(ctx); err != nil {
		return fmt.Errorf("failed to start analysis consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analysisConsumer != nil {
		if err := consumers.analysisConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analysis consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
