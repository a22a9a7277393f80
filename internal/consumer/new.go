package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:                   cfg.Logger,
		config:              cfg.Config,
		redisClient:         cfg.RedisClient,
		qdrantClient:        cfg.QdrantClient,
		elasticsearchClient: cfg.ElasticsearchClient,
		postgresDB:          cfg.PostgresDB,
		minioClient:         cfg.MinIOClient,
		rabbitMQ:            cfg.RabbitMQ,
		voyageClient:        cfg.VoyageClient,
		geminiClient:        cfg.GeminiClient,
		discord:             cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.minioClient == nil {
		return fmt.Errorf("minio client is required")
	}
	if srv.config.TM.SemanticSearch && (srv.qdrantClient == nil || srv.voyageClient == nil) {
		return fmt.Errorf("qdrant and voyage clients are required for semantic search")
	}
	if srv.config.TM.LexicalSearch && srv.elasticsearchClient == nil {
		return fmt.Errorf("elasticsearch client is required for lexical search")
	}

	return nil
}
