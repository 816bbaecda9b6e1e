package repository

import (
	"context"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// DeliveryRepository records delivery attempts for auditing.
// The pgx implementation is in pg_delivery_repo.go; the in-memory one
// (memory_delivery_repo.go) backs tests and database-less deployments.
type DeliveryRepository interface {
	Record(ctx context.Context, rec *domain.DeliveryRecord) error

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error)
}
