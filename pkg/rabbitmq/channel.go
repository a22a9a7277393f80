package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.current().ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return ch.current().QueueDeclare(queue.spread())
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return ch.current().QueueBind(queueBind.spread())
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.current().PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}

func (ch *channelImpl) NotifyReconnect(receiver chan bool) <-chan bool {
	ch.mu.Lock()
	ch.reconnects = append(ch.reconnects, receiver)
	ch.mu.Unlock()
	return receiver
}

func (ch *channelImpl) listenNotifyReconnect() {
	reconnected := make(chan bool)
	ch.conn.notifyReconnect(reconnected)
	go func() {
		ctx := context.Background()
		for range reconnected {
			channel, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(ctx, "rabbitmq.channel: recreate failed: %v", err)
				continue
			}
			ch.mu.Lock()
			_ = ch.ch.Close()
			ch.ch = channel
			receivers := append([]chan bool(nil), ch.reconnects...)
			ch.mu.Unlock()
			for _, r := range receivers {
				r <- true
			}
		}
	}()
}
