package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, Request{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	})
}

func (g *geminiImpl) GenerateJSON(ctx context.Context, prompt string, schema map[string]any) (string, error) {
	temperature := 0.0
	return g.generate(ctx, Request{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:        &temperature,
			ResponseMimeType:   MimeTypeJSON,
			ResponseJSONSchema: schema,
		},
	})
}

func (g *geminiImpl) generate(ctx context.Context, req Request) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
