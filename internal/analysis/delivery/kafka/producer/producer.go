package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"localization-srv/internal/analysis"
	kafkaDelivery "localization-srv/internal/analysis/delivery/kafka"
)

func (p *implProducer) PublishAnalysisRequested(ctx context.Context, event analysis.AnalysisRequested) error {
	msg := kafkaDelivery.AnalysisRequestedMessage{
		AnalysisID:  event.AnalysisID,
		UserID:      event.UserID,
		WorkspaceID: event.WorkspaceID,
		RequestedAt: event.RequestedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis requested: %w", err)
	}

	if err := p.producer.Publish(ctx, []byte(event.AnalysisID), body); err != nil {
		return fmt.Errorf("failed to publish analysis requested: %w", err)
	}

	p.l.Infof(ctx, "analysis.delivery.kafka.producer.PublishAnalysisRequested: Published analysis %s", event.AnalysisID)
	return nil
}
