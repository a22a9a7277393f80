package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var errNotConnected = errors.New("rabbitmq: not connected")

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.isRetrying = false
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) IsClosed() bool {
	c.mu.RLock()
	retrying := c.isRetrying
	c.mu.RUnlock()
	return !c.IsReady() && !retrying
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenNotifyReconnect()
	return chImpl, nil
}

func (c *connectionImpl) dial(connChan chan<- *amqp.Connection, cancel <-chan struct{}) {
	ctx := context.Background()
	for attempt := 1; ; attempt++ {
		select {
		case <-cancel:
			return
		default:
		}
		c.l.Infof(ctx, "rabbitmq.dial: connecting, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.l.Warnf(ctx, "rabbitmq.dial: %v", err)
			time.Sleep(RetryConnectionDelay)
			continue
		}
		select {
		case connChan <- conn:
		case <-cancel:
			_ = conn.Close()
		}
		return
	}
}

func (c *connectionImpl) connect() error {
	connChan := make(chan *amqp.Connection)
	cancel := make(chan struct{})
	go c.dial(connChan, cancel)

	var timeout <-chan time.Time
	if !c.retryWithoutTimeout {
		timeout = time.After(RetryConnectionTimeout)
	}

	select {
	case conn := <-connChan:
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
		c.listenNotifyClose(conn)
		return nil
	case <-timeout:
		close(cancel)
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		err, ok := <-notifyClose
		if !ok || err == nil {
			// graceful close
			return
		}
		ctx := context.Background()
		c.l.Warnf(ctx, "rabbitmq.listenNotifyClose: connection closed: %v", err)

		c.mu.Lock()
		c.conn = nil
		c.isRetrying = true
		c.mu.Unlock()

		if err := c.connect(); err != nil {
			c.l.Errorf(ctx, "rabbitmq.listenNotifyClose: reconnect failed: %v", err)
		}

		c.mu.Lock()
		c.isRetrying = false
		receivers := append([]chan bool(nil), c.reconnects...)
		c.mu.Unlock()
		for _, r := range receivers {
			r <- true
		}
	}()
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, errNotConnected
	}
	return conn.Channel()
}

func (c *connectionImpl) notifyReconnect(receiver chan bool) <-chan bool {
	c.mu.Lock()
	c.reconnects = append(c.reconnects, receiver)
	c.mu.Unlock()
	return receiver
}
