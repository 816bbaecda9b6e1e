package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/payload"
)

// gotifyMessage is the JSON body for Gotify's POST /message endpoint.
type gotifyMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

// Gotify delivers payloads to Gotify-shaped servers. The destination URL is
// the server base; the app token goes in the X-Gotify-Key header.
type Gotify struct {
	httpClient *http.Client
}

func NewGotify(timeout time.Duration) *Gotify {
	return &Gotify{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *Gotify) Kind() string { return destination.KindGotify }

func (g *Gotify) Deliver(ctx context.Context, dest destination.Config, p *payload.Payload) error {
	msg := gotifyMessage{
		Title:    headline(p),
		Message:  body(p),
		Priority: dest.Priority,
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal gotify message: %w", err)
	}

	endpoint := strings.TrimRight(dest.URL, "/") + "/message"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Gotify-Key", dest.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to gotify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected gotify status: %d", resp.StatusCode)
	}
	return nil
}

// compile-time check that Gotify implements Sink
var _ Sink = (*Gotify)(nil)
