package consumer

import (
	"fmt"

	"localization-srv/config"
	"localization-srv/internal/analysis"
	kafkaDelivery "localization-srv/internal/analysis/delivery/kafka"
	"localization-srv/pkg/discord"
	pkgKafka "localization-srv/pkg/kafka"
	"localization-srv/pkg/log"
)

type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     analysis.UseCase
	// Discord is optional. When set, failed analyses are posted to it.
	Discord     discord.IDiscord
}

// Consumer runs the analysis requested consumer group.
type Consumer struct {
	l       log.Logger
	brokers []string
	topic   string
	groupID string
	uc      analysis.UseCase
	discord discord.IDiscord

	requestedGroup pkgKafka.IConsumer
}

func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	c := &Consumer{
		l:       cfg.Logger,
		brokers: cfg.KafkaConfig.Brokers,
		topic:   cfg.KafkaConfig.Topic,
		groupID: cfg.KafkaConfig.GroupID,
		uc:      cfg.UseCase,
		discord: cfg.Discord,
	}
	if c.topic == "" {
		c.topic = kafkaDelivery.TopicAnalysisRequested
	}
	if c.groupID == "" {
		c.groupID = kafkaDelivery.GroupIDAnalysisRequested
	}
	return c, nil
}

func (c *Consumer) Close() error {
	if c.requestedGroup != nil {
		if err := c.requestedGroup.Close(); err != nil {
			return fmt.Errorf("failed to close analysis requested group: %w", err)
		}
	}
	return nil
}
