package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultWebhookTimeout = 10 * time.Second

type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (c WebhookConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("webhook url is required")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid webhook url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("webhook url must be http or https, got %q", u.Scheme)
	}
	return nil
}

type webhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(config WebhookConfig) (Notifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultWebhookTimeout
	}

	return &webhookNotifier{
		url:    config.URL,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (n *webhookNotifier) SendDigest(ctx context.Context, digest Digest) error {
	digest.Summary = digest.Summary.Rounded()

	body, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("failed to marshal digest payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
