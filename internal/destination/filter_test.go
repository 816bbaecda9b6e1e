package destination_test

import (
	"testing"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/domain"
)

func TestShouldNotify_FlagMapping(t *testing.T) {
	tests := []struct {
		name     string
		flags    destination.TypeFlags
		itemType domain.ItemType
		want     bool
	}{
		{"albums enabled", destination.TypeFlags{EnableAlbums: true}, domain.ItemTypeAlbum, true},
		{"movies enabled", destination.TypeFlags{EnableMovies: true}, domain.ItemTypeMovie, true},
		{"episodes enabled", destination.TypeFlags{EnableEpisodes: true}, domain.ItemTypeEpisode, true},
		{"series enabled", destination.TypeFlags{EnableSeries: true}, domain.ItemTypeSeries, true},
		{"seasons enabled", destination.TypeFlags{EnableSeasons: true}, domain.ItemTypeSeason, true},
		{"songs enabled", destination.TypeFlags{EnableSongs: true}, domain.ItemTypeSong, true},
		{"movies disabled", destination.TypeFlags{EnableEpisodes: true}, domain.ItemTypeMovie, false},
		{"nothing enabled", destination.TypeFlags{}, domain.ItemTypeMovie, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := destination.Config{TypeFlags: tc.flags}
			if got := destination.ShouldNotify(cfg, tc.itemType); got != tc.want {
				t.Fatalf("ShouldNotify(%+v, %s) = %v, want %v", tc.flags, tc.itemType, got, tc.want)
			}
		})
	}
}

// Unknown item types must never match, even with every flag on.
func TestShouldNotify_UnknownTypeNeverMatches(t *testing.T) {
	cfg := destination.Config{TypeFlags: destination.TypeFlags{
		EnableAlbums: true, EnableMovies: true, EnableEpisodes: true,
		EnableSeries: true, EnableSeasons: true, EnableSongs: true,
	}}

	for _, unknown := range []domain.ItemType{"Book", "Photo", ""} {
		if destination.ShouldNotify(cfg, unknown) {
			t.Fatalf("expected unknown type %q to never match", unknown)
		}
	}
}
