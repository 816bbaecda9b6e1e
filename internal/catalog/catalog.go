package catalog

import (
	"context"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// Client abstracts the lookup-by-identifier operation of the media library.
// Mocking this interface in tests gives full control over catalog behaviour
// without making real HTTP calls.
type Client interface {
	// GetItem returns the full item with metadata and parent chain.
	// Returns domain.ErrItemNotFound when the item no longer exists.
	GetItem(ctx context.Context, id string) (*domain.CatalogItem, error)
}
