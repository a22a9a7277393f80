package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	kafkaDelivery "localization-srv/internal/analysis/delivery/kafka"
	"localization-srv/pkg/scope"
)

// handleAnalysisRequestedMessage decodes the message and hands it to the use case.
// Malformed messages are skipped so they are not redelivered.
func (c *Consumer) handleAnalysisRequestedMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	c.l.Infof(ctx, "analysis.delivery.kafka.consumer.handleAnalysisRequestedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.AnalysisRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisRequestedMessage: Invalid message format (skipping): %v", err)
		return nil
	}
	if message.AnalysisID == "" {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisRequestedMessage: Missing analysis_id (skipping)")
		return nil
	}

	sc := toScope(message)
	ctx = scope.SetScopeToContext(ctx, sc)

	if err := c.uc.Process(ctx, sc, toProcessInput(message)); err != nil {
		c.l.Errorf(ctx, "analysis.delivery.kafka.consumer.handleAnalysisRequestedMessage: usecase Process failed: %v", err)
		c.alert(ctx, message.AnalysisID, err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "analysis.delivery.kafka.consumer.handleAnalysisRequestedMessage: Processed analysis %s", message.AnalysisID)
	return nil
}

func (c *Consumer) alert(ctx context.Context, analysisID string, err error) {
	if c.discord == nil {
		return
	}
	if sendErr := c.discord.SendError(ctx, "Analysis failed", fmt.Sprintf("analysis `%s` could not be processed", analysisID), err); sendErr != nil {
		c.l.Warnf(ctx, "analysis.delivery.kafka.consumer.alert: discord: %v", sendErr)
	}
}
