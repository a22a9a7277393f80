package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localization-srv/internal/analysis"
	kafkaDelivery "localization-srv/internal/analysis/delivery/kafka"
	"localization-srv/pkg/log"
)

type fakeProducer struct {
	key, value []byte
	err        error
}

func (f *fakeProducer) Publish(_ context.Context, key, value []byte) error {
	f.key, f.value = key, value
	return f.err
}

func (f *fakeProducer) Close() error { return nil }

func TestPublishAnalysisRequested(t *testing.T) {
	fake := &fakeProducer{}
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	err := New(log.NewNop(), fake).PublishAnalysisRequested(context.Background(), analysis.AnalysisRequested{
		AnalysisID:  "a1",
		UserID:      "u1",
		RequestedAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "a1", string(fake.key))
	var msg kafkaDelivery.AnalysisRequestedMessage
	require.NoError(t, json.Unmarshal(fake.value, &msg))
	assert.Equal(t, "u1", msg.UserID)
	assert.True(t, at.Equal(msg.RequestedAt))
}

func TestPublishAnalysisRequestedError(t *testing.T) {
	err := New(log.NewNop(), &fakeProducer{err: errors.New("broker down")}).
		PublishAnalysisRequested(context.Background(), analysis.AnalysisRequested{AnalysisID: "a1"})
	assert.Error(t, err)
}
