package rabbitmq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishArgsSpread(t *testing.T) {
	ctx := context.Background()
	args := PublishArgs{
		Exchange:   "localization",
		RoutingKey: "analysis.completed",
		Msg:        Publishing{ContentType: ContentTypeJSON, Body: []byte(`{}`)},
	}
	_, exchange, key, mandatory, immediate, msg := args.spread(ctx)

	assert.Equal(t, "localization", exchange)
	assert.Equal(t, "analysis.completed", key)
	assert.False(t, mandatory)
	assert.False(t, immediate)
	assert.Equal(t, ContentTypeJSON, msg.ContentType)
}

func TestQueueBindArgsSpreadOrder(t *testing.T) {
	queue, key, exchange, _, _ := QueueBindArgs{Queue: "q", Exchange: "x", RoutingKey: "k"}.spread()
	assert.Equal(t, []string{"q", "k", "x"}, []string{queue, key, exchange})
}

func TestConnectionStateWithoutConn(t *testing.T) {
	c := &connectionImpl{}
	assert.False(t, c.IsReady())
	assert.True(t, c.IsClosed())
	_, err := c.Channel()
	assert.ErrorIs(t, err, errNotConnected)
}
