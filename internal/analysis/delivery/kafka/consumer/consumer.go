package consumer

import (
	"context"
	"fmt"

	pkgKafka "localization-srv/pkg/kafka"
)

// ConsumeAnalysisRequested starts the consumer group in the background. It stops when ctx is done.
func (c *Consumer) ConsumeAnalysisRequested(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.brokers,
		GroupID: c.groupID,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer group %s: %w", c.groupID, err)
	}
	c.requestedGroup = group

	handler := &analysisRequestedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.Consume(ctx, []string{c.topic}, handler); err != nil {
					c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.ConsumeAnalysisRequested: Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.ConsumeAnalysisRequested: Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.topic)
	return nil
}
