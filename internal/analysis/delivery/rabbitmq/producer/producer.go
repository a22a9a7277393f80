package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"localization-srv/internal/analysis"
	rabbitDelivery "localization-srv/internal/analysis/delivery/rabbitmq"
	pkgRabbit "localization-srv/pkg/rabbitmq"
)

func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, event analysis.AnalysisCompleted) error {
	body, err := json.Marshal(rabbitDelivery.AnalysisCompletedMessage{
		AnalysisID:        event.AnalysisID,
		DocumentID:        event.DocumentID,
		UserID:            event.UserID,
		WorkspaceID:       event.WorkspaceID,
		OverallComplexity: event.OverallComplexity,
		ExportReady:       event.ExportReady,
		ReportObject:      event.ReportObject,
		CompletedAt:       event.CompletedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal analysis completed: %w", err)
	}

	err = p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   p.exchange,
		RoutingKey: rabbitDelivery.RoutingKeyAnalysisCompleted,
		Msg: pkgRabbit.Publishing{
			ContentType: pkgRabbit.ContentTypeJSON,
			MessageId:   event.AnalysisID,
			Timestamp:   event.CompletedAt,
			Body:        body,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish analysis completed: %w", err)
	}

	p.l.Infof(ctx, "analysis.delivery.rabbitmq.producer.PublishAnalysisCompleted: Published analysis %s", event.AnalysisID)
	return nil
}
