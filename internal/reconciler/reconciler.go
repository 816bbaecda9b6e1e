package reconciler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/catalog"
	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/payload"
	"github.com/mediahook/catalog-notifier/internal/queue"
	"github.com/mediahook/catalog-notifier/internal/ratelimiter"
	"github.com/mediahook/catalog-notifier/internal/repository"
	"github.com/mediahook/catalog-notifier/internal/sink"
)

// MetricHooks carries the metric callback functions injected by main.
// Using a struct keeps the reconciler constructor signature clean.
type MetricHooks struct {
	OnSent   func(sinkKind string, latency time.Duration)
	OnFailed func(sinkKind string)
	OnRetry  func()
	OnDrop   func()
}

// Reconciler drains the pending queue on a fixed period. Each tick it checks
// every queued item for metadata readiness, requeues not-yet-ready items up
// to the retry ceiling, and fans ready ones out to all matching destinations.
//
// The event intake keeps writing to the queue while a tick runs; the tick
// works off a point-in-time snapshot and each entry is processed
// independently, so one bad item or destination never stalls the rest.
type Reconciler struct {
	q          *queue.PendingQueue
	catalog    catalog.Client
	sinks      []sink.Sink
	dests      *destination.Store
	builder    *payload.Builder
	history    repository.DeliveryRepository
	limiter    *ratelimiter.SinkLimiters
	interval   time.Duration
	maxRetries int
	logger     *zap.Logger
	hooks      MetricHooks
}

func New(
	q *queue.PendingQueue,
	cat catalog.Client,
	sinks []sink.Sink,
	dests *destination.Store,
	builder *payload.Builder,
	history repository.DeliveryRepository,
	limiter *ratelimiter.SinkLimiters,
	interval time.Duration,
	maxRetries int,
	logger *zap.Logger,
	hooks MetricHooks,
) *Reconciler {
	if hooks.OnSent == nil {
		hooks.OnSent = func(string, time.Duration) {}
	}
	if hooks.OnFailed == nil {
		hooks.OnFailed = func(string) {}
	}
	if hooks.OnRetry == nil {
		hooks.OnRetry = func() {}
	}
	if hooks.OnDrop == nil {
		hooks.OnDrop = func() {}
	}
	return &Reconciler{
		q: q, catalog: cat, sinks: sinks, dests: dests, builder: builder,
		history: history, limiter: limiter,
		interval: interval, maxRetries: maxRetries,
		logger: logger, hooks: hooks,
	}
}

// Run ticks every interval until ctx is cancelled. The schedule is
// independent of tick outcomes: a tick that fails never stops the next one.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started",
		zap.Duration("interval", r.interval),
		zap.Int("max_retries", r.maxRetries),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopping")
			return
		case <-ticker.C:
			r.Tick(ctx)
		}
	}
}

// Tick processes one snapshot of the queue. Exported so tests can drive the
// loop without waiting on the ticker. Panics are contained here so a single
// bad tick cannot kill the schedule.
func (r *Reconciler) Tick(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("tick panicked", zap.Any("panic", rec))
		}
	}()

	entries := r.q.Snapshot()
	if len(entries) == 0 {
		return
	}
	dests := r.dests.Snapshot()

	for _, e := range entries {
		if ctx.Err() != nil {
			return
		}
		r.processEntry(ctx, e, dests)
	}
}

func (r *Reconciler) processEntry(ctx context.Context, e queue.Entry, dests map[string][]destination.Config) {
	log := r.logger.With(zap.String("item_id", e.ItemID))

	item, err := r.catalog.GetItem(ctx, e.ItemID)
	if err != nil {
		// Item vanished or the lookup faulted: a recoverable per-entry
		// condition, not a tick failure.
		log.Warn("dropping entry, catalog lookup failed", zap.Error(err))
		r.q.Remove(e.ItemID)
		r.hooks.OnDrop()
		return
	}

	if !item.MetadataReady() && e.RetryCount < r.maxRetries {
		e.RetryCount++
		r.q.Upsert(e)
		r.hooks.OnRetry()
		log.Debug("metadata not ready, will recheck",
			zap.Int("retry_count", e.RetryCount),
			zap.Int("max_retries", r.maxRetries),
		)
		return
	}

	if !item.MetadataReady() {
		// Retry ceiling reached: notify anyway with whatever metadata exists
		// rather than dropping the item silently.
		log.Warn("retry ceiling reached, notifying without full metadata",
			zap.Int("retry_count", e.RetryCount))
	}

	p := r.builder.Build(item)

	for _, s := range r.sinks {
		for _, dest := range dests[s.Kind()] {
			if !destination.ShouldNotify(dest, item.Type) {
				continue
			}
			r.deliver(ctx, s, dest, item, p)
		}
	}

	r.q.Remove(e.ItemID)
}

// deliver sends the payload to one destination and records the attempt.
// A failure here is logged and counted; it never aborts sibling destinations
// or sibling items.
func (r *Reconciler) deliver(
	ctx context.Context,
	s sink.Sink,
	dest destination.Config,
	item *domain.CatalogItem,
	p *payload.Payload,
) {
	log := r.logger.With(
		zap.String("item_id", item.ID),
		zap.String("sink", s.Kind()),
		zap.String("destination", dest.Name),
	)

	if err := r.limiter.Wait(ctx, s.Kind()); err != nil {
		return // ctx cancelled while waiting, shutdown in progress
	}

	start := time.Now()
	err := s.Deliver(ctx, dest, p)
	elapsed := time.Since(start)

	rec := &domain.DeliveryRecord{
		ID:          uuid.New().String(),
		ItemID:      item.ID,
		ItemName:    item.Name,
		ItemType:    item.Type,
		SinkKind:    s.Kind(),
		Destination: dest.Name,
		AttemptedAt: time.Now().UTC(),
	}

	if err != nil {
		rec.Outcome = domain.OutcomeFailed
		msg := err.Error()
		rec.Error = &msg
		r.hooks.OnFailed(s.Kind())
		log.Warn("delivery failed", zap.Error(err), zap.Duration("latency", elapsed))
	} else {
		rec.Outcome = domain.OutcomeSent
		r.hooks.OnSent(s.Kind(), elapsed)
		log.Info("notification sent", zap.Duration("latency", elapsed))
	}

	if r.history != nil {
		if recErr := r.history.Record(ctx, rec); recErr != nil {
			log.Warn("failed to record delivery", zap.Error(recErr))
		}
	}
}
