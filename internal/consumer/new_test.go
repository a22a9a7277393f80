package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"localization-srv/config"
	"localization-srv/pkg/discord"
	"localization-srv/pkg/log"
)

type fakeDiscord struct {
	discord.IDiscord
	messages []string
	err      error
}

func (f *fakeDiscord) SendMessage(_ context.Context, content string) error {
	f.messages = append(f.messages, content)
	return f.err
}

func TestNewValidatesDependencies(t *testing.T) {
	tcs := map[string]struct {
		cfg     Config
		wantErr string
	}{
		"no logger": {
			cfg:     Config{},
			wantErr: "logger is required",
		},
		"no config": {
			cfg:     Config{Logger: log.NewNop()},
			wantErr: "config is required",
		},
		"no brokers": {
			cfg:     Config{Logger: log.NewNop(), Config: &config.Config{}},
			wantErr: "kafka brokers are required",
		},
		"no redis": {
			cfg: Config{
				Logger: log.NewNop(),
				Config: &config.Config{Kafka: config.KafkaConfig{Brokers: []string{"localhost:9092"}}},
			},
			wantErr: "redis client is required",
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			srv, err := New(tc.cfg)
			assert.Nil(t, srv)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestAnnounce(t *testing.T) {
	(&ConsumerServer{l: log.NewNop()}).announce(context.Background(), "ignored")

	d := &fakeDiscord{err: errors.New("webhook gone")}
	srv := &ConsumerServer{l: log.NewNop(), discord: d}
	srv.announce(context.Background(), "analysis worker started")
	assert.Equal(t, []string{"analysis worker started"}, d.messages)
}
