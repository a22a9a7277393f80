package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Embed embeds texts as documents. Vectors come back in input order.
func (v *voyageImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return v.embed(ctx, texts, InputTypeDocument)
}

// EmbedQuery embeds a single search query.
func (v *voyageImpl) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := v.embed(ctx, []string{text}, InputTypeQuery)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (v *voyageImpl) embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	headers := map[string]string{"Authorization": "Bearer " + v.apiKey}
	req := Request{Input: texts, Model: v.model, InputType: inputType}

	body, statusCode, err := v.httpClient.Post(ctx, v.endpoint, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call Voyage API: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("voyage API returned status %d: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Voyage response: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("voyage returned %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(vectors) {
			return nil, fmt.Errorf("voyage returned out of range index %d", item.Index)
		}
		vectors[item.Index] = item.Embedding
	}
	return vectors, nil
}
