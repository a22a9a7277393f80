package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProducerConfig(t *testing.T) {
	assert.ErrorIs(t, validateProducerConfig(Config{Topic: "t"}), errBrokersRequired)
	assert.ErrorIs(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}}), errTopicRequired)
	assert.NoError(t, validateProducerConfig(Config{Brokers: []string{"b:9092"}, Topic: "t"}))
}

func TestValidateConsumerConfig(t *testing.T) {
	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{GroupID: "g"}), errBrokersRequired)
	assert.ErrorIs(t, validateConsumerConfig(ConsumerConfig{Brokers: []string{"b:9092"}}), errGroupRequired)
}

func TestPublishHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &producerImpl{topic: "t"}
	assert.ErrorIs(t, p.Publish(ctx, []byte("k"), []byte("v")), context.Canceled)
	assert.NoError(t, p.Close())
}
