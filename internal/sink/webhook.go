package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/payload"
)

// Webhook delivers the raw payload as JSON to any HTTP endpoint. Useful for
// home-automation hubs and custom receivers that do their own templating.
type Webhook struct {
	httpClient *http.Client
}

func NewWebhook(timeout time.Duration) *Webhook {
	return &Webhook{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (w *Webhook) Kind() string { return destination.KindWebhook }

// Deliver posts the payload's field map verbatim and accepts any 2xx reply.
func (w *Webhook) Deliver(ctx context.Context, dest destination.Config, p *payload.Payload) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dest.URL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if dest.Token != "" {
		req.Header.Set("Authorization", "Bearer "+dest.Token)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected webhook status: %d", resp.StatusCode)
	}
	return nil
}

// compile-time check that Webhook implements Sink
var _ Sink = (*Webhook)(nil)
