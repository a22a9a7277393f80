package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type analysisRequestedHandler struct {
	consumer *Consumer
}

func (h *analysisRequestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *analysisRequestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *analysisRequestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleAnalysisRequestedMessage(session.Context(), msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "analysis.delivery.kafka.consumer.ConsumeClaim: Failed to process analysis requested message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
