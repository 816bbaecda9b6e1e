package sink

import (
	"context"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/payload"
)

// Sink delivers a notification payload to one kind of external target.
// Each implementation owns its wire format and transport behaviour; the
// reconciler only observes success or failure of the call.
type Sink interface {
	// Kind matches the destination.Kind* label the sink serves.
	Kind() string

	// Deliver sends the payload to one configured destination.
	Deliver(ctx context.Context, dest destination.Config, p *payload.Payload) error
}
