package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"NewsPulse/internal/ports"
)

// maxInputRunes bounds payload size; transformer backends truncate
// around 512 tokens anyway.
const maxInputRunes = 2000

// Client talks to the external text-classification inference service.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.Inference = (*Client)(nil)

// NewClient creates a reusable HTTP client.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ClassifyText sends text for classification and returns the winning
// label with its probability.
func (c *Client) ClassifyText(ctx context.Context, text string) (string, float64, error) {
	if runes := []rune(text); len(runes) > maxInputRunes {
		text = string(runes[:maxInputRunes])
	}

	var resp struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := c.post(ctx, "/classify", map[string]any{"text": text}, &resp); err != nil {
		return "", 0, err
	}
	if resp.Label == "" {
		return "", 0, fmt.Errorf("inference returned empty label")
	}

	return resp.Label, resp.Score, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			return fmt.Errorf("unexpected status %s, close body: %v", resp.Status, closeErr)
		}
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		_ = resp.Body.Close()
		return fmt.Errorf("decode response: %w", err)
	}

	if err := resp.Body.Close(); err != nil {
		return fmt.Errorf("close response body: %w", err)
	}

	return nil
}
