package destination

import "github.com/mediahook/catalog-notifier/internal/domain"

// ShouldNotify decides whether a destination wants notifications for the
// given item type. Pure function; unknown item types never match.
func ShouldNotify(cfg Config, t domain.ItemType) bool {
	switch t {
	case domain.ItemTypeAlbum:
		return cfg.EnableAlbums
	case domain.ItemTypeMovie:
		return cfg.EnableMovies
	case domain.ItemTypeEpisode:
		return cfg.EnableEpisodes
	case domain.ItemTypeSeries:
		return cfg.EnableSeries
	case domain.ItemTypeSeason:
		return cfg.EnableSeasons
	case domain.ItemTypeSong:
		return cfg.EnableSongs
	default:
		return false
	}
}
