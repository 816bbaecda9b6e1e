package subscriber

import (
	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/queue"
)

// Subscriber receives "item added" events from the catalog and enqueues real
// (non-virtual) items for the reconcile loop. It must never block the event
// source: the only side effect is an O(1) queue write, no catalog or sink
// calls happen here.
type Subscriber struct {
	q          *queue.PendingQueue
	logger     *zap.Logger
	onEnqueued func()
}

// New constructs a subscriber. onEnqueued is optional (nil = no-op).
func New(q *queue.PendingQueue, logger *zap.Logger, onEnqueued func()) *Subscriber {
	if onEnqueued == nil {
		onEnqueued = func() {}
	}
	return &Subscriber{q: q, logger: logger, onEnqueued: onEnqueued}
}

// OnItemAdded handles one event. Virtual items (placeholders with no media
// file behind them) are ignored. A re-added item gets a fresh entry with
// retry count zero, replacing any live one.
func (s *Subscriber) OnItemAdded(evt domain.ItemAddedEvent) {
	if evt.Virtual {
		s.logger.Debug("ignoring virtual item",
			zap.String("item_id", evt.ItemID),
			zap.String("name", evt.Name),
		)
		return
	}

	s.q.Upsert(queue.Entry{ItemID: evt.ItemID, RetryCount: 0})
	s.onEnqueued()
	s.logger.Debug("item queued for notification",
		zap.String("item_id", evt.ItemID),
		zap.String("name", evt.Name),
	)
}
