package main

import (
	"context"
	"fmt"

	"localization-srv/config"
	configES "localization-srv/config/elasticsearch"
	configKafka "localization-srv/config/kafka"
	configMinio "localization-srv/config/minio"
	configPostgre "localization-srv/config/postgre"
	configQdrant "localization-srv/config/qdrant"
	configRabbitMQ "localization-srv/config/rabbitmq"
	configRedis "localization-srv/config/redis"
	"localization-srv/internal/httpserver"
	tmElasticsearch "localization-srv/internal/tm/repository/elasticsearch"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/gemini"
	pkgKafka "localization-srv/pkg/kafka"
	"localization-srv/pkg/log"
	"localization-srv/pkg/qdrant"
	"localization-srv/pkg/rabbitmq"
	"localization-srv/pkg/voyage"
)

// @title       Localization Intelligence API
// @description Segmentation, translation memory matching, complexity scoring and localization readiness for regulated pharma content.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Scope
// @in header
// @name X-Scope
// @description Optional base64 encoded caller scope. Anonymous when absent.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// 3. PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Translation memory stores
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
		logger.Info(ctx, "Semantic translation memory enabled (Qdrant + Voyage)")
	}
	if cfg.TM.LexicalSearch {
		if esClient, err = configES.Connect(ctx, cfg.Elasticsearch, []byte(tmElasticsearch.Mapping)); err != nil {
			logger.Errorf(ctx, "Failed to connect to Elasticsearch: %v", err)
			return
		}
		defer configES.Disconnect()
		logger.Info(ctx, "Lexical translation memory enabled (Elasticsearch)")
	}

	// 6. MinIO
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Info(ctx, "MinIO client initialized")

	// 7. Kafka producer (optional, async analysis)
	var kafkaProducer pkgKafka.IProducer
	if kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// 8. RabbitMQ (optional, completion events)
	var rabbitClient rabbitmq.IRabbitMQ
	if rabbitClient, err = configRabbitMQ.Connect(logger, cfg.RabbitMQ); err != nil {
		logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
		rabbitClient = nil
	} else {
		defer configRabbitMQ.Disconnect()
		logger.Info(ctx, "RabbitMQ connected")
	}

	// 9. Gemini (optional, cultural review)
	var geminiClient gemini.IGemini
	if cfg.Intelligence.LLMEnabled {
		if geminiClient, err = gemini.NewGemini(gemini.GeminiConfig{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model}); err != nil {
			logger.Warnf(ctx, "Gemini not available, cultural review runs without LLM: %v", err)
			geminiClient = nil
		}
	}

	// 10. Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	}

	// 11. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Database Configuration
		PostgresDB: postgresDB,

		// Infrastructure clients
		RedisClient:         redisClient,
		QdrantClient:        qdrantClient,
		ElasticsearchClient: esClient,
		MinIOClient:         minioClient,
		KafkaProducer:       kafkaProducer,
		RabbitMQ:            rabbitClient,

		// AI/ML clients
		VoyageClient: voyageClient,
		GeminiClient: geminiClient,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// Run blocks until SIGINT or SIGTERM and shuts the server down gracefully.
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
