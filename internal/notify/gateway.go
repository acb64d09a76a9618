package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// GatewayClient hands notifications to the external messaging gateway over HTTP.
type GatewayClient struct {
	http  *http.Client
	url   string
	token string
}

func NewGatewayClient(url, token string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		http:  &http.Client{Timeout: timeout},
		url:   url,
		token: token,
	}
}

type gatewayRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Deliver returns an error wrapping ErrRejected on 4xx responses.
func (c *GatewayClient) Deliver(ctx context.Context, m Message) error {
	body, err := json.Marshal(gatewayRequest{To: m.To, Text: m.Text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach messaging gateway: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		return fmt.Errorf("messaging gateway responded with status %d", resp.StatusCode)
	}
}
