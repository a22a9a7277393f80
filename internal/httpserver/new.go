package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"localization-srv/config"
	"localization-srv/internal/embedding"
	"localization-srv/internal/intelligence"
	"localization-srv/internal/recommendation"
	"localization-srv/internal/scoring"
	"localization-srv/internal/segmentation"
	"localization-srv/internal/tm"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/elasticsearch"
	"localization-srv/pkg/gemini"
	pkgKafka "localization-srv/pkg/kafka"
	"localization-srv/pkg/log"
	"localization-srv/pkg/minio"
	"localization-srv/pkg/qdrant"
	"localization-srv/pkg/rabbitmq"
	"localization-srv/pkg/redis"
	"localization-srv/pkg/voyage"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Database Configuration
	postgresDB *sql.DB

	// Infrastructure clients
	redisClient         redis.IRedis
	qdrantClient        qdrant.IQdrant
	elasticsearchClient elasticsearch.IElasticsearch
	minioClient         minio.MinIO
	kafkaProducer       pkgKafka.IProducer
	rabbitMQ            rabbitmq.IRabbitMQ

	// AI/ML clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared usecases
	embeddingUC      embedding.UseCase
	segmentationUC   segmentation.UseCase
	tmUC             tm.UseCase
	scoringUC        scoring.UseCase
	intelligenceUC   intelligence.UseCase
	recommendationUC recommendation.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Database Configuration
	PostgresDB *sql.DB

	// Infrastructure clients. Qdrant and Elasticsearch are only required when their search is enabled.
	RedisClient         redis.IRedis
	QdrantClient        qdrant.IQdrant
	ElasticsearchClient elasticsearch.IElasticsearch
	MinIOClient         minio.MinIO
	KafkaProducer       pkgKafka.IProducer
	RabbitMQ            rabbitmq.IRabbitMQ

	// AI/ML clients (optional)
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Infrastructure clients
		redisClient:         cfg.RedisClient,
		qdrantClient:        cfg.QdrantClient,
		elasticsearchClient: cfg.ElasticsearchClient,
		minioClient:         cfg.MinIOClient,
		kafkaProducer:       cfg.KafkaProducer,
		rabbitMQ:            cfg.RabbitMQ,

		// AI/ML clients
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.config.TM.SemanticSearch {
		if srv.qdrantClient == nil {
			return errors.New("qdrantClient is required when semantic search is enabled")
		}
		if srv.voyageClient == nil {
			return errors.New("voyageClient is required when semantic search is enabled")
		}
	}
	if srv.config.TM.LexicalSearch && srv.elasticsearchClient == nil {
		return errors.New("elasticsearchClient is required when lexical search is enabled")
	}

	// Kafka, RabbitMQ, Gemini and Discord are optional
	return nil
}
