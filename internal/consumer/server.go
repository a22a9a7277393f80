package consumer

import (
	"context"
	"database/sql"

	"localization-srv/config"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/gemini"
	"localization-srv/pkg/log"
	"localization-srv/pkg/minio"
	"localization-srv/pkg/qdrant"
	"localization-srv/pkg/rabbitmq"
	"localization-srv/pkg/redis"
	"localization-srv/pkg/voyage"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	redisClient         redis.IRedis
	qdrantClient        qdrant.IQdrant
	elasticsearchClient elasticsearch.IElasticsearch
	postgresDB          *sql.DB
	minioClient         minio.MinIO
	rabbitMQ            rabbitmq.IRabbitMQ

	// AI/ML clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RedisClient         redis.IRedis
	QdrantClient        qdrant.IQdrant
	ElasticsearchClient elasticsearch.IElasticsearch
	PostgresDB          *sql.DB
	MinIOClient         minio.MinIO
	RabbitMQ            rabbitmq.IRabbitMQ

	// AI/ML clients
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")
	srv.announce(ctx, "analysis worker started")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.announce(context.Background(), "analysis worker stopped")
	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}

// announce posts a lifecycle message to Discord when a webhook is configured.
func (srv *ConsumerServer) announce(ctx context.Context, message string) {
	if srv.discord == nil {
		return
	}
	if err := srv.discord.SendMessage(ctx, message); err != nil {
		srv.l.Warnf(ctx, "consumer.announce: %v", err)
	}
}
