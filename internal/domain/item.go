package domain

// ItemType tags a catalog item with its media kind.
// The values match the type names the catalog server reports.
type ItemType string

const (
	ItemTypeMovie   ItemType = "Movie"
	ItemTypeEpisode ItemType = "Episode"
	ItemTypeSeason  ItemType = "Season"
	ItemTypeSeries  ItemType = "Series"
	ItemTypeAlbum   ItemType = "MusicAlbum"
	ItemTypeSong    ItemType = "Audio"
)

// CatalogItem is a media entity owned by the external library.
// Read-only from this service's perspective; the parent chain is populated
// for hierarchical types (episode → season → series).
type CatalogItem struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Overview       string            `json:"overview"`
	ProductionYear *int              `json:"production_year,omitempty"`
	IndexNumber    *int              `json:"index_number,omitempty"`
	ProviderIDs    map[string]string `json:"provider_ids,omitempty"`
	Type           ItemType          `json:"type"`
	IsVirtual      bool              `json:"is_virtual"`
	Parent         *CatalogItem      `json:"parent,omitempty"`
}

// MetadataReady reports whether the library's metadata refresh has run for
// this item. Provider IDs are attached only once a metadata provider has
// matched the item, so an empty set means "not yet refreshed".
func (i *CatalogItem) MetadataReady() bool {
	return len(i.ProviderIDs) > 0
}

// Series walks the parent chain to the series an episode or season belongs
// to. Returns nil for items without one.
func (i *CatalogItem) Series() *CatalogItem {
	switch i.Type {
	case ItemTypeSeason:
		return i.Parent
	case ItemTypeEpisode:
		if i.Parent != nil {
			return i.Parent.Parent
		}
	}
	return nil
}

// ItemAddedEvent is the inbound "item added" notification from the catalog.
// It carries just enough to decide whether to enqueue; the full item is
// fetched later by the reconciler.
type ItemAddedEvent struct {
	ItemID  string `json:"itemId"`
	Name    string `json:"name"`
	Virtual bool   `json:"virtual"`
}

func (e *ItemAddedEvent) Validate() error {
	if e.ItemID == "" {
		return ErrInvalidEvent
	}
	return nil
}
