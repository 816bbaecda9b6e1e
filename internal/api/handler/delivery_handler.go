package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/repository"
)

const (
	defaultDeliveryLimit = 50
	maxDeliveryLimit     = 500
)

// DeliveryHandler serves the delivery-history listing.
type DeliveryHandler struct {
	repo   repository.DeliveryRepository
	logger *zap.Logger
}

func NewDeliveryHandler(repo repository.DeliveryRepository, logger *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{repo: repo, logger: logger}
}

// List handles GET /api/v1/deliveries
//
// @Summary  Recent delivery attempts, newest first
// @Tags     deliveries
// @Produce  json
// @Param    limit  query     int  false  "Max records (default 50, max 500)"
// @Success  200    {object}  map[string]any
// @Router   /api/v1/deliveries [get]
func (h *DeliveryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultDeliveryLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
		if limit > maxDeliveryLimit {
			limit = maxDeliveryLimit
		}
	}

	records, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list deliveries", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list deliveries")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data":  records,
		"count": len(records),
	})
}
