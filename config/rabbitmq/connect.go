package rabbitmq

import (
	"fmt"
	"sync"

	"localization-srv/config"
	"localization-srv/pkg/log"
	"localization-srv/pkg/rabbitmq"
)

var (
	mu       sync.Mutex
	instance rabbitmq.IRabbitMQ
)

// Connect dials RabbitMQ once. The connection reconnects on its own after that.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	conn, err := rabbitmq.NewRabbitMQ(l, cfg.URL, false)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: connect: %w", err)
	}
	instance = conn
	return instance, nil
}

func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
}
