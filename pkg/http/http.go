package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("http: marshal body: %w", err)
		}
		payload = b
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.config.RetryWait):
			}
		}

		respBody, status, err := c.send(ctx, url, payload, headers)
		if err != nil {
			lastErr = err
			continue
		}
		if retryable(status) && attempt < c.config.Retries {
			lastErr = fmt.Errorf("http: upstream returned %d", status)
			continue
		}
		return respBody, status, nil
	}
	return nil, 0, fmt.Errorf("http: POST %s failed after %d retries: %w", url, c.config.Retries, lastErr)
}

// send makes one attempt. The body reader is rebuilt per call.
func (c *clientImpl) send(ctx context.Context, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("http: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("http: read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}
