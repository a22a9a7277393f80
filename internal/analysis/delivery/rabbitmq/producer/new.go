package producer

import (
	"context"
	"fmt"

	"localization-srv/internal/analysis"
	rabbitDelivery "localization-srv/internal/analysis/delivery/rabbitmq"
	"localization-srv/pkg/log"
	pkgRabbit "localization-srv/pkg/rabbitmq"
)

type implProducer struct {
	l        log.Logger
	ch       pkgRabbit.IChannel
	exchange string
}

// New declares the analysis topology on ch and returns a notifier publishing to it.
// The topology is declared again whenever the channel reconnects.
func New(l log.Logger, ch pkgRabbit.IChannel, exchange string) (analysis.Notifier, error) {
	p := &implProducer{
		l:        l,
		ch:       ch,
		exchange: rabbitDelivery.AnalysisExchange(exchange).Name,
	}
	if err := p.declare(); err != nil {
		return nil, err
	}
	go p.redeclareOnReconnect(ch.NotifyReconnect(make(chan bool, 1)))
	return p, nil
}

func (p *implProducer) declare() error {
	exc := rabbitDelivery.AnalysisExchange(p.exchange)
	if err := p.ch.ExchangeDeclare(exc); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exc.Name, err)
	}
	queue := rabbitDelivery.AnalysisCompletedQueue()
	if _, err := p.ch.QueueDeclare(queue); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue.Name, err)
	}
	if err := p.ch.QueueBind(pkgRabbit.QueueBindArgs{
		Queue:      queue.Name,
		Exchange:   exc.Name,
		RoutingKey: rabbitDelivery.RoutingKeyAnalysisCompleted,
	}); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", queue.Name, err)
	}
	return nil
}

func (p *implProducer) redeclareOnReconnect(reconnected <-chan bool) {
	ctx := context.Background()
	for range reconnected {
		if err := p.declare(); err != nil {
			p.l.Errorf(ctx, "analysis.delivery.rabbitmq.producer.redeclareOnReconnect: %v", err)
			continue
		}
		p.l.Infof(ctx, "analysis.delivery.rabbitmq.producer.redeclareOnReconnect: topology declared on %s", p.exchange)
	}
}
