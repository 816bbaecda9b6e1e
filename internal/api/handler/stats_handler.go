package handler

import (
	"net/http"

	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/queue"
)

// StatsHandler serves a human-readable JSON snapshot of the pipeline state.
// Raw Prometheus metrics (counters, histograms) are available at /metrics
// via promhttp.Handler and are separate from this endpoint.
type StatsHandler struct {
	q     *queue.PendingQueue
	dests *destination.Store
}

func NewStatsHandler(q *queue.PendingQueue, dests *destination.Store) *StatsHandler {
	return &StatsHandler{q: q, dests: dests}
}

// GetStats handles GET /api/v1/stats
//
// @Summary  Pending-queue depth and destination counts
// @Tags     stats
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api/v1/stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"pending_items": h.q.Len(),
		"destinations":  h.dests.Count(),
	})
}
