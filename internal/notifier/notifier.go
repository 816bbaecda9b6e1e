package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/reconciler"
	"github.com/mediahook/catalog-notifier/internal/subscriber"
)

// Notifier is the surface the host's notification-dispatch mechanism sees.
// This notifier works purely off catalog events, so the generic per-user
// send is a no-op and the per-user enablement check always passes.
// It owns the reconcile loop's lifecycle: Start launches it, Close stops it
// and waits for the in-flight tick to finish.
type Notifier struct {
	sub    *subscriber.Subscriber
	rec    *reconciler.Reconciler
	logger *zap.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(sub *subscriber.Subscriber, rec *reconciler.Reconciler, logger *zap.Logger) *Notifier {
	return &Notifier{sub: sub, rec: rec, logger: logger}
}

// Name identifies this notifier to the host.
func (n *Notifier) Name() string { return "Catalog Item Notifier" }

// Start launches the reconcile loop. Call at most once.
func (n *Notifier) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.done = make(chan struct{})

	go func() {
		defer close(n.done)
		n.rec.Run(runCtx)
	}()
}

// OnItemAdded forwards a catalog event to the subscriber.
func (n *Notifier) OnItemAdded(evt domain.ItemAddedEvent) {
	n.sub.OnItemAdded(evt)
}

// SendForUser is the host's generic per-user notification entry point.
// Intentionally a no-op: delivery is driven by catalog events, not users.
func (n *Notifier) SendForUser(_ context.Context, _ string, _ string) error {
	return nil
}

// EnabledForUser reports whether this notifier applies to a user.
// Always true; per-destination filtering happens on item type, not user.
func (n *Notifier) EnabledForUser(_ string) bool { return true }

// Close stops the reconcile loop and waits for it to return. Pending queue
// entries are discarded; the queue is not persisted across restarts.
func (n *Notifier) Close() error {
	if n.cancel == nil {
		return nil
	}
	n.cancel()
	<-n.done
	n.logger.Info("notifier closed")
	return nil
}
