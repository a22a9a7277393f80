package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes keyed messages to a single topic.
type IProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

// IConsumer is a joined consumer group.
type IConsumer interface {
	// Consume serves one group session and returns after each rebalance,
	// so callers run it in a loop until ctx is done.
	Consume(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	Errors() <-chan error
	Close() error
}

func NewProducer(cfg Config) (IProducer, error) {
	if err := validateProducerConfig(cfg); err != nil {
		return nil, err
	}
	return newProducerImpl(cfg)
}

func NewConsumer(cfg ConsumerConfig) (IConsumer, error) {
	if err := validateConsumerConfig(cfg); err != nil {
		return nil, err
	}
	return newConsumerImpl(cfg)
}
