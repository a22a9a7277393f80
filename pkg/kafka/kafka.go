package kafka

import (
	"errors"
)

var (
	errBrokersRequired = errors.New("kafka: at least one broker is required")
	errTopicRequired   = errors.New("kafka: topic is required")
	errGroupRequired   = errors.New("kafka: group ID is required")
)

func validateProducerConfig(cfg Config) error {
	if len(cfg.Brokers) == 0 {
		return errBrokersRequired
	}
	if cfg.Topic == "" {
		return errTopicRequired
	}
	return nil
}

func validateConsumerConfig(cfg ConsumerConfig) error {
	if len(cfg.Brokers) == 0 {
		return errBrokersRequired
	}
	if cfg.GroupID == "" {
		return errGroupRequired
	}
	return nil
}
