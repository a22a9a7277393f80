package elasticsearch

import (
	"context"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
)

// IElasticsearch is the subset of Elasticsearch used for lexical lookups.
// Implementations are safe for concurrent use.
type IElasticsearch interface {
	Ping(ctx context.Context) error
	// EnsureIndex creates index with mapping when it does not exist yet.
	EnsureIndex(ctx context.Context, index string, mapping []byte) error
	// IndexDocuments writes docs with a single bulk request.
	IndexDocuments(ctx context.Context, index string, docs []Document) error
	Search(ctx context.Context, index string, query map[string]any, size int) ([]Hit, error)
}

// NewElasticsearch creates a client and pings the cluster.
func NewElasticsearch(cfg ElasticsearchConfig) (IElasticsearch, error) {
	if len(cfg.Addresses) == 0 {
		return nil, ErrAddressRequired
	}
	client, err := es.NewClient(es.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	impl := &esImpl{client: client}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()
	if err := impl.Ping(ctx); err != nil {
		return nil, err
	}
	return impl, nil
}
