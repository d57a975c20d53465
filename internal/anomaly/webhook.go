package anomaly

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/telemetry/infrastructure/csvlog"
)

// Notifier delivers anomaly alerts.
type Notifier interface {
	Notify(ctx context.Context, record csvlog.Record) error
}

type alertPayload struct {
	Timestamp string `json:"timestamp"`
	NodeID    string `json:"node_id"`
	Sensor    string `json:"sensor"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// WebhookNotifier posts anomaly alerts to a webhook endpoint.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// WebhookOption configures the webhook notifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) WebhookOption {
	return func(n *WebhookNotifier) {
		if client != nil {
			n.client = client
		}
	}
}

// NewWebhookNotifier constructs a webhook notifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) (*WebhookNotifier, error) {
	if url == "" {
		return nil, errors.New("anomaly webhook: empty url")
	}
	notifier := &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(notifier)
	}
	return notifier, nil
}

// Notify posts the anomalous row as JSON.
func (n *WebhookNotifier) Notify(ctx context.Context, record csvlog.Record) error {
	if n == nil || n.url == "" {
		return errors.New("anomaly webhook: empty url")
	}
	body, err := json.Marshal(alertPayload{
		Timestamp: record.Timestamp,
		NodeID:    record.NodeID,
		Sensor:    record.Sensor,
		Key:       record.Key,
		Value:     record.Value,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("anomaly webhook: non-2xx response %d", resp.StatusCode)
	}
	return nil
}
