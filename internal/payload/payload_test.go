package payload_test

import (
	"encoding/json"
	"testing"

	"github.com/mediahook/catalog-notifier/internal/payload"
)

func TestPayload_CaseInsensitiveOverwrite(t *testing.T) {
	p := payload.New()

	p.Set("Year", 1999)
	p.Set("YEAR", 2020)

	if p.Len() != 1 {
		t.Fatalf("expected one field, got %d", p.Len())
	}
	v, ok := p.Get("year")
	if !ok {
		t.Fatal("expected field to be readable under any casing")
	}
	if v != 2020 {
		t.Fatalf("expected later write to win, got %v", v)
	}

	// Canonical casing is the first writer's.
	fields := p.Fields()
	if _, ok := fields["Year"]; !ok {
		t.Fatalf("expected canonical name %q, got fields %v", "Year", fields)
	}
}

func TestPayload_GetString(t *testing.T) {
	p := payload.New()
	p.Set("SeriesName", "X")
	p.Set("SeasonNumber", 3)

	if got := p.GetString("seriesname"); got != "X" {
		t.Fatalf("expected %q, got %q", "X", got)
	}
	// Non-string values come back empty rather than panicking.
	if got := p.GetString("SeasonNumber"); got != "" {
		t.Fatalf("expected empty string for non-string field, got %q", got)
	}
	if got := p.GetString("missing"); got != "" {
		t.Fatalf("expected empty string for missing field, got %q", got)
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	p := payload.New()
	p.Set("Name", "Some Movie")
	p.Set("ItemId", "abc")

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded["Name"] != "Some Movie" || decoded["ItemId"] != "abc" {
		t.Fatalf("unexpected decoded payload: %v", decoded)
	}
}
