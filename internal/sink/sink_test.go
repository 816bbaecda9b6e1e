package sink_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/payload"
	"github.com/mediahook/catalog-notifier/internal/sink"
)

func episodePayload() *payload.Payload {
	p := payload.New()
	p.Set("Name", "The One With The Test")
	p.Set("ItemType", "Episode")
	p.Set("Overview", "Things happen.")
	p.Set("SeriesName", "X")
	p.Set("SeasonNumber00", "01")
	p.Set("EpisodeNumber00", "05")
	return p
}

func TestDiscord_Deliver(t *testing.T) {
	var got struct {
		Username string `json:"username"`
		Embeds   []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"embeds"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := sink.NewDiscord(time.Second)
	dest := destination.Config{Name: "test", URL: srv.URL, Username: "Library Bot"}

	if err := d.Deliver(context.Background(), dest, episodePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Username != "Library Bot" {
		t.Fatalf("expected username override, got %q", got.Username)
	}
	if len(got.Embeds) != 1 || got.Embeds[0].Title != "X S01E05 - The One With The Test" {
		t.Fatalf("unexpected embeds: %+v", got.Embeds)
	}
}

func TestDiscord_Deliver_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := sink.NewDiscord(time.Second)
	err := d.Deliver(context.Background(), destination.Config{URL: srv.URL}, episodePayload())
	if err == nil {
		t.Fatal("expected an error for a 429 response")
	}
}

func TestGotify_Deliver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/message" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("X-Gotify-Key"); got != "app-token" {
			t.Errorf("unexpected token header %q", got)
		}
		var msg struct {
			Title    string `json:"title"`
			Priority int    `json:"priority"`
		}
		_ = json.NewDecoder(r.Body).Decode(&msg)
		if msg.Title == "" || msg.Priority != 7 {
			t.Errorf("unexpected message: %+v", msg)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := sink.NewGotify(time.Second)
	dest := destination.Config{URL: srv.URL + "/", Token: "app-token", Priority: 7}
	if err := g.Deliver(context.Background(), dest, episodePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWebhook_DeliverPostsRawPayload(t *testing.T) {
	var raw []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	wh := sink.NewWebhook(time.Second)
	if err := wh.Deliver(context.Background(), destination.Config{URL: srv.URL}, episodePayload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if fields["SeriesName"] != "X" || fields["EpisodeNumber00"] != "05" {
		t.Fatalf("expected raw payload fields, got %v", fields)
	}
}
