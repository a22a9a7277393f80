package gemini

import (
	"context"

	pkgHttp "localization-srv/pkg/http"
)

// IGemini generates text with Google Gemini. Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateJSON constrains the answer to schema and returns the raw JSON text.
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error)
}

// NewGemini creates a Gemini client. Model defaults to DefaultModel.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	return &geminiImpl{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: pkgHttp.NewClient(pkgHttp.ClientConfig{
			Timeout:   defaultTimeout,
			Retries:   defaultRetries,
			RetryWait: defaultRetryWait,
		}),
	}, nil
}
