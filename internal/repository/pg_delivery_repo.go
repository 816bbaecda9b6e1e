package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mediahook/catalog-notifier/internal/domain"
)

// PgDeliveryRepository persists delivery records in Postgres.
type PgDeliveryRepository struct {
	pool *pgxpool.Pool
}

func NewPgDeliveryRepository(pool *pgxpool.Pool) *PgDeliveryRepository {
	return &PgDeliveryRepository{pool: pool}
}

func (r *PgDeliveryRepository) Record(ctx context.Context, rec *domain.DeliveryRecord) error {
	const q = `
		INSERT INTO deliveries
			(id, item_id, item_name, item_type, sink_kind, destination, outcome, error_message, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, q,
		rec.ID, rec.ItemID, rec.ItemName, string(rec.ItemType),
		rec.SinkKind, rec.Destination, string(rec.Outcome),
		rec.Error, rec.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery record: %w", err)
	}
	return nil
}

func (r *PgDeliveryRepository) List(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error) {
	const q = `
		SELECT id, item_id, item_name, item_type, sink_kind, destination, outcome, error_message, attempted_at
		FROM deliveries
		ORDER BY attempted_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("query deliveries: %w", err)
	}
	defer rows.Close()

	var records []*domain.DeliveryRecord
	for rows.Next() {
		var rec domain.DeliveryRecord
		var itemType, outcome string
		if err := rows.Scan(
			&rec.ID, &rec.ItemID, &rec.ItemName, &itemType,
			&rec.SinkKind, &rec.Destination, &outcome,
			&rec.Error, &rec.AttemptedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery record: %w", err)
		}
		rec.ItemType = domain.ItemType(itemType)
		rec.Outcome = domain.Outcome(outcome)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deliveries: %w", err)
	}
	return records, nil
}

// compile-time check that PgDeliveryRepository implements DeliveryRepository
var _ DeliveryRepository = (*PgDeliveryRepository)(nil)
