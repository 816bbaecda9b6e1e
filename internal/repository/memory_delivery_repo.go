package repository

import (
	"context"
	"sync"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// memoryCap bounds how many records the in-memory repository retains.
// Oldest records are discarded first.
const memoryCap = 1000

// MemoryDeliveryRepository keeps delivery records in a bounded in-memory
// ring. Used in tests and when no database is configured.
type MemoryDeliveryRepository struct {
	mu      sync.RWMutex
	records []*domain.DeliveryRecord

	// RecordErr, when set, is returned by Record. Used to exercise the
	// "recording failed" path in tests.
	RecordErr error
}

func NewMemoryDeliveryRepository() *MemoryDeliveryRepository {
	return &MemoryDeliveryRepository{}
}

func (m *MemoryDeliveryRepository) Record(_ context.Context, rec *domain.DeliveryRecord) error {
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *rec
	m.records = append(m.records, &clone)
	if len(m.records) > memoryCap {
		m.records = m.records[len(m.records)-memoryCap:]
	}
	return nil
}

func (m *MemoryDeliveryRepository) List(_ context.Context, limit int) ([]*domain.DeliveryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.records)
	if limit > n {
		limit = n
	}
	out := make([]*domain.DeliveryRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		clone := *m.records[i]
		out = append(out, &clone)
	}
	return out, nil
}

// compile-time check that MemoryDeliveryRepository implements DeliveryRepository
var _ DeliveryRepository = (*MemoryDeliveryRepository)(nil)
