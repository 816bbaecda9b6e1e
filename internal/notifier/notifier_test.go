package notifier_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/catalog"
	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/notifier"
	"github.com/mediahook/catalog-notifier/internal/payload"
	"github.com/mediahook/catalog-notifier/internal/queue"
	"github.com/mediahook/catalog-notifier/internal/ratelimiter"
	"github.com/mediahook/catalog-notifier/internal/reconciler"
	"github.com/mediahook/catalog-notifier/internal/repository"
	"github.com/mediahook/catalog-notifier/internal/subscriber"
)

func newNotifier() (*notifier.Notifier, *queue.PendingQueue) {
	q := queue.New()
	rec := reconciler.New(
		q, catalog.NewFake(), nil, destination.NewStatic(nil),
		payload.NewBuilder("srv", "s", ""),
		repository.NewMemoryDeliveryRepository(),
		ratelimiter.New(10, nil),
		5*time.Millisecond, 3, zap.NewNop(), reconciler.MetricHooks{},
	)
	sub := subscriber.New(q, zap.NewNop(), nil)
	return notifier.New(sub, rec, zap.NewNop()), q
}

func TestNotifier_StartClose(t *testing.T) {
	n, _ := newNotifier()

	n.Start(context.Background())

	done := make(chan error, 1)
	go func() { done <- n.Close() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected close error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not return")
	}
}

func TestNotifier_CloseWithoutStart(t *testing.T) {
	n, _ := newNotifier()
	if err := n.Close(); err != nil {
		t.Fatalf("expected Close before Start to be a no-op, got %v", err)
	}
}

func TestNotifier_HostSurface(t *testing.T) {
	n, q := newNotifier()

	if n.Name() == "" {
		t.Fatal("expected a non-empty notifier name")
	}
	if !n.EnabledForUser("anyone") {
		t.Fatal("expected notifier to be enabled for every user")
	}
	if err := n.SendForUser(context.Background(), "user-1", "hello"); err != nil {
		t.Fatalf("expected per-user send to be a silent no-op, got %v", err)
	}

	n.OnItemAdded(domain.ItemAddedEvent{ItemID: "item-1", Name: "Movie"})
	if q.Len() != 1 {
		t.Fatal("expected forwarded event to enqueue the item")
	}
}
