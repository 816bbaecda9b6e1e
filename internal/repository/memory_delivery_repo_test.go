package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/repository"
)

func record(i int) *domain.DeliveryRecord {
	return &domain.DeliveryRecord{
		ID:          fmt.Sprintf("rec-%d", i),
		ItemID:      fmt.Sprintf("item-%d", i),
		ItemType:    domain.ItemTypeMovie,
		SinkKind:    "webhook",
		Outcome:     domain.OutcomeSent,
		AttemptedAt: time.Now().UTC(),
	}
}

func TestMemoryDeliveryRepository_ListNewestFirst(t *testing.T) {
	repo := repository.NewMemoryDeliveryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Record(ctx, record(i)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].ID != "rec-4" || got[2].ID != "rec-2" {
		t.Fatalf("expected newest-first ordering, got %s..%s", got[0].ID, got[2].ID)
	}
}

func TestMemoryDeliveryRepository_LimitBeyondSize(t *testing.T) {
	repo := repository.NewMemoryDeliveryRepository()
	ctx := context.Background()

	_ = repo.Record(ctx, record(0))

	got, err := repo.List(ctx, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
}
