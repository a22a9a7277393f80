package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"localization-srv/config"
	configES "localization-srv/config/elasticsearch"
	configMinio "localization-srv/config/minio"
	configPostgre "localization-srv/config/postgre"
	configQdrant "localization-srv/config/qdrant"
	configRabbitMQ "localization-srv/config/rabbitmq"
	configRedis "localization-srv/config/redis"
	"localization-srv/internal/consumer"
	tmElasticsearch "localization-srv/internal/tm/repository/elasticsearch"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/gemini"
	"localization-srv/pkg/log"
	"localization-srv/pkg/qdrant"
	"localization-srv/pkg/rabbitmq"
	"localization-srv/pkg/voyage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Localization Analysis Worker...")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Translation memory stores
	var (
		qdrantClient qdrant.IQdrant
		voyageClient voyage.IVoyage
		esClient     elasticsearch.IElasticsearch
	)
	if cfg.TM.SemanticSearch {
		if qdrantClient, err = configQdrant.Connect(ctx, cfg.Qdrant); err != nil {
			logger.Errorf(ctx, "Failed to connect to Qdrant: %v", err)
			return
		}
		defer configQdrant.Disconnect()

		if voyageClient, err = voyage.NewVoyage(voyage.VoyageConfig{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model}); err != nil {
			logger.Errorf(ctx, "Failed to initialize Voyage client: %v", err)
			return
		}
		logger.Info(ctx, "Qdrant and Voyage clients initialized")
	}
	if cfg.TM.LexicalSearch {
		if esClient, err = configES.Connect(ctx, cfg.Elasticsearch, []byte(tmElasticsearch.Mapping)); err != nil {
			logger.Errorf(ctx, "Failed to connect to Elasticsearch: %v", err)
			return
		}
		defer configES.Disconnect()
		logger.Info(ctx, "Elasticsearch client initialized")
	}

	// MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// RabbitMQ (optional)
	var rabbitClient rabbitmq.IRabbitMQ
	if rabbitClient, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ); err != nil {
		logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
		rabbitClient = nil
	} else {
		defer configRabbitMQ.Disconnect()
		logger.Info(ctx, "RabbitMQ connected")
	}

	// Gemini (optional)
	var geminiClient gemini.IGemini
	if cfg.Intelligence.LLMEnabled {
		if geminiClient, err = gemini.NewGemini(gemini.GeminiConfig{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model}); err != nil {
			logger.Warnf(ctx, "Gemini not available, cultural review runs without LLM: %v", err)
			geminiClient = nil
		}
	}

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:              logger,
		Config:              cfg,
		RedisClient:         redisClient,
		QdrantClient:        qdrantClient,
		ElasticsearchClient: esClient,
		PostgresDB:          postgresDB,
		MinIOClient:         minioClient,
		RabbitMQ:            rabbitClient,
		VoyageClient:        voyageClient,
		GeminiClient:        geminiClient,
		Discord:             discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
