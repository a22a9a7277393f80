package elasticsearch

import (
	"context"
	"fmt"
	"sync"

	"localization-srv/config"
	"localization-srv/pkg/elasticsearch"
)

var (
	mu       sync.Mutex
	instance elasticsearch.IElasticsearch
)

// Connect builds the client and creates the TM index with mapping when absent.
func Connect(ctx context.Context, cfg config.ElasticsearchConfig, mapping []byte) (elasticsearch.IElasticsearch, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := elasticsearch.NewElasticsearch(elasticsearch.ElasticsearchConfig{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: connect: %w", err)
	}
	if err := client.EnsureIndex(ctx, cfg.Index, mapping); err != nil {
		return nil, fmt.Errorf("elasticsearch: ensure index %q: %w", cfg.Index, err)
	}

	instance = client
	return instance, nil
}

// Disconnect drops the shared client. The HTTP transport holds nothing to close.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
