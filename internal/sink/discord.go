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

// discordMessage is the JSON body posted to a Discord-compatible webhook URL.
type discordMessage struct {
	Username  string         `json:"username,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	Embeds    []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
}

const discordEmbedColor = 0xAA5CC3

// Discord delivers payloads to Discord-shaped webhook destinations.
type Discord struct {
	httpClient *http.Client
}

func NewDiscord(timeout time.Duration) *Discord {
	return &Discord{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (d *Discord) Kind() string { return destination.KindDiscord }

// Deliver posts an embed to the destination's webhook URL.
// Discord answers webhook posts with 204 No Content.
func (d *Discord) Deliver(ctx context.Context, dest destination.Config, p *payload.Payload) error {
	msg := discordMessage{
		Username:  dest.Username,
		AvatarURL: dest.AvatarURL,
		Embeds: []discordEmbed{{
			Title:       headline(p),
			Description: body(p),
			Color:       discordEmbedColor,
		}},
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal discord message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dest.URL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected discord status: %d", resp.StatusCode)
	}
	return nil
}

// compile-time check that Discord implements Sink
var _ Sink = (*Discord)(nil)
