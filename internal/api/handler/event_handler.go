package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/mediahook/catalog-notifier/internal/api/middleware"
	"github.com/mediahook/catalog-notifier/internal/domain"
	"github.com/mediahook/catalog-notifier/internal/subscriber"
)

// EventHandler receives "item added" events posted by the catalog server.
type EventHandler struct {
	sub    *subscriber.Subscriber
	logger *zap.Logger
}

func NewEventHandler(sub *subscriber.Subscriber, logger *zap.Logger) *EventHandler {
	return &EventHandler{sub: sub, logger: logger}
}

// ItemAdded handles POST /api/v1/events/item-added
//
// Always answers 202 for well-formed events, including virtual items that
// are dropped on the floor: the event source must never observe a failure
// from enqueueing.
//
// @Summary  Ingest an item-added event
// @Tags     events
// @Accept   json
// @Param    body  body  domain.ItemAddedEvent  true  "Event payload"
// @Success  202
// @Failure  400  {object}  map[string]string
// @Failure  422  {object}  map[string]string
// @Router   /api/v1/events/item-added [post]
func (h *EventHandler) ItemAdded(w http.ResponseWriter, r *http.Request) {
	var evt domain.ItemAddedEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := evt.Validate(); err != nil {
		h.logger.Warn("rejected item-added event",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	h.sub.OnItemAdded(evt)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
