package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mbodj/frigo/internal/config"
)

// Client sends plain-text notifications to the household.
type Client interface {
	SendText(ctx context.Context, message string) error
}

// WebhookClient posts messages to a configured webhook URL (ntfy, Slack
// incoming webhook in text mode, or anything accepting a plain-text POST).
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook notifier from the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "text/plain; charset=utf-8").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// SendText posts the message body to the webhook.
func (c *WebhookClient) SendText(ctx context.Context, message string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(message).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode())
	}

	return nil
}
