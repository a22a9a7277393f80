package kafka

import (
	"fmt"
	"sync"

	"localization-srv/config"
	"localization-srv/pkg/kafka"
)

var (
	mu       sync.Mutex
	producer kafka.IProducer
)

// ConnectProducer returns the shared producer for cfg.Topic.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if producer != nil {
		return producer, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("kafka: connect producer for %s: %w", cfg.Topic, err)
	}
	producer = p
	return producer, nil
}

// DisconnectProducer flushes and closes the shared producer.
func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if producer == nil {
		return nil
	}
	err := producer.Close()
	producer = nil
	return err
}
