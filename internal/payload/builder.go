package payload

import (
	"fmt"
	"strings"
	"time"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// Builder constructs notification payloads from catalog items.
// Server identity fields are fixed at startup; everything else comes from
// the item's own metadata tree.
type Builder struct {
	serverID   string
	serverName string
	serverURL  string
	now        func() time.Time
}

func NewBuilder(serverID, serverName, serverURL string) *Builder {
	return &Builder{
		serverID:   serverID,
		serverName: serverName,
		serverURL:  serverURL,
		now:        time.Now,
	}
}

// Build produces the flat field map for one item. Pure apart from the clock.
func (b *Builder) Build(item *domain.CatalogItem) *Payload {
	p := New()
	now := b.now()

	p.Set("Timestamp", now)
	p.Set("UtcTimestamp", now.UTC())
	p.Set("Name", item.Name)
	p.Set("Overview", item.Overview)
	p.Set("ItemId", item.ID)
	p.Set("ServerId", b.serverID)
	p.Set("ServerUrl", b.serverURL)
	p.Set("ServerName", b.serverName)
	p.Set("ItemType", string(item.Type))

	// Quirk, kept deliberately: the year field is emitted only when the item
	// itself has NO production year. The season/episode branches below fill
	// it in from the series. Pinned by a test so changing it is a conscious
	// decision.
	if item.ProductionYear == nil {
		p.Set("Year", item.ProductionYear)
	}

	switch item.Type {
	case domain.ItemTypeSeason:
		b.enrichSeason(p, item)
	case domain.ItemTypeEpisode:
		b.enrichEpisode(p, item)
	}

	for key, value := range item.ProviderIDs {
		p.Set("Provider_"+strings.ToLower(key), value)
	}

	return p
}

func (b *Builder) enrichSeason(p *Payload, season *domain.CatalogItem) {
	if series := season.Series(); series != nil {
		if series.Name != "" {
			p.Set("SeriesName", series.Name)
		}
		if series.ProductionYear != nil {
			p.Set("Year", *series.ProductionYear)
		}
	}
	if season.IndexNumber != nil {
		setIndexFields(p, "SeasonNumber", *season.IndexNumber)
	}
}

func (b *Builder) enrichEpisode(p *Payload, episode *domain.CatalogItem) {
	season := episode.Parent
	series := episode.Series()

	if series != nil && series.Name != "" {
		p.Set("SeriesName", series.Name)
	}
	if season != nil && season.IndexNumber != nil {
		setIndexFields(p, "SeasonNumber", *season.IndexNumber)
	}
	if episode.IndexNumber != nil {
		setIndexFields(p, "EpisodeNumber", *episode.IndexNumber)
	}
	if series != nil && series.ProductionYear != nil {
		p.Set("Year", *series.ProductionYear)
	}
}

// setIndexFields writes an index number plus its 2- and 3-digit zero-padded
// string variants (e.g. SeasonNumber, SeasonNumber00, SeasonNumber000).
func setIndexFields(p *Payload, name string, n int) {
	p.Set(name, n)
	p.Set(name+"00", fmt.Sprintf("%02d", n))
	p.Set(name+"000", fmt.Sprintf("%03d", n))
}
