package catalog

import (
	"context"
	"sync"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// Fake is a hand-written, in-memory Client used in unit tests.
type Fake struct {
	mu    sync.RWMutex
	items map[string]*domain.CatalogItem

	// GetItemErr, when set, is returned by every lookup.
	GetItemErr error
}

func NewFake() *Fake {
	return &Fake{items: make(map[string]*domain.CatalogItem)}
}

// Put stores or replaces an item.
func (f *Fake) Put(item *domain.CatalogItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
}

// Delete removes an item, simulating it vanishing from the library.
func (f *Fake) Delete(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
}

func (f *Fake) GetItem(_ context.Context, id string) (*domain.CatalogItem, error) {
	if f.GetItemErr != nil {
		return nil, f.GetItemErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

var _ Client = (*Fake)(nil)
