package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/api/handler"
	apimw "github.com/mediahook/catalog-notifier/internal/api/middleware"
	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/queue"
	"github.com/mediahook/catalog-notifier/internal/repository"
	"github.com/mediahook/catalog-notifier/internal/subscriber"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	sub *subscriber.Subscriber,
	q *queue.PendingQueue,
	dests *destination.Store,
	deliveries repository.DeliveryRepository,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)            // recover panics, return 500
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)        // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))

	// --- handler instances ---
	eh := handler.NewEventHandler(sub, logger)
	sh := handler.NewStatsHandler(q, dests)
	dh := handler.NewDeliveryHandler(deliveries, logger)
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/health", hh.Health)

	// Raw Prometheus scrape endpoint (for Prometheus server / Grafana)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events/item-added", eh.ItemAdded)
		r.Get("/stats", sh.GetStats)
		r.Get("/deliveries", dh.List)
	})

	return r
}
