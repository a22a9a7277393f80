package voyage

import (
	"context"

	pkgHttp "localization-srv/pkg/http"
)

// IVoyage embeds text with Voyage AI. Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// NewVoyage creates a Voyage client.
func NewVoyage(cfg VoyageConfig) (IVoyage, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = Model
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = Endpoint
	}
	return &voyageImpl{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: cfg.Endpoint,
		httpClient: pkgHttp.NewClient(pkgHttp.ClientConfig{
			Timeout:   defaultTimeout,
			Retries:   defaultRetries,
			RetryWait: defaultRetryWait,
		}),
	}, nil
}
