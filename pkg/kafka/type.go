package kafka

import "github.com/IBM/sarama"

// Config holds configuration for a producer bound to one topic.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

type consumerImpl struct {
	group sarama.ConsumerGroup
}
