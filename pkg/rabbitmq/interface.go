package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"localization-srv/pkg/log"
)

// IRabbitMQ is a self-healing RabbitMQ connection. Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	IsClosed() bool
	Channel() (IChannel, error)
}

// IChannel is a channel that is recreated after the connection reconnects.
type IChannel interface {
	ExchangeDeclare(exc ExchangeArgs) error
	QueueDeclare(queue QueueArgs) (amqp.Queue, error)
	QueueBind(queueBind QueueBindArgs) error
	Publish(ctx context.Context, publish PublishArgs) error
	Close() error
	// NotifyReconnect registers receiver for a signal after the channel is recreated.
	NotifyReconnect(receiver chan bool) <-chan bool
}

// NewRabbitMQ dials url, retrying every RetryConnectionDelay. Unless retryWithoutTimeout is set,
// it gives up after RetryConnectionTimeout.
func NewRabbitMQ(l log.Logger, url string, retryWithoutTimeout bool) (IRabbitMQ, error) {
	conn := &connectionImpl{
		l:                   l,
		url:                 url,
		retryWithoutTimeout: retryWithoutTimeout,
	}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
