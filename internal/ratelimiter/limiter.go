package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// SinkLimiters holds one token bucket limiter per sink kind, capping how fast
// the reconciler may hit each external service. Burst is set equal to the
// rate so no extra burst capacity accumulates beyond the per-second maximum.
type SinkLimiters struct {
	limiters map[string]*rate.Limiter
}

// New creates a SinkLimiters with ratePerSec tokens per second per sink kind.
func New(ratePerSec int, kinds []string) *SinkLimiters {
	r := rate.Limit(ratePerSec)
	burst := ratePerSec

	limiters := make(map[string]*rate.Limiter, len(kinds))
	for _, kind := range kinds {
		limiters[kind] = rate.NewLimiter(r, burst)
	}
	return &SinkLimiters{limiters: limiters}
}

// Wait blocks until the sink kind's limiter grants a token. Called by the
// reconciler immediately before each deliver call. Unregistered kinds pass
// through unthrottled. Returns a non-nil error only if ctx is cancelled
// while waiting.
func (sl *SinkLimiters) Wait(ctx context.Context, kind string) error {
	l, ok := sl.limiters[kind]
	if !ok {
		return nil
	}
	return l.Wait(ctx)
}
