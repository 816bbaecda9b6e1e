package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mediahook/catalog-notifier/internal/api"
	"github.com/mediahook/catalog-notifier/internal/catalog"
	"github.com/mediahook/catalog-notifier/internal/config"
	"github.com/mediahook/catalog-notifier/internal/db"
	"github.com/mediahook/catalog-notifier/internal/destination"
	"github.com/mediahook/catalog-notifier/internal/metrics"
	"github.com/mediahook/catalog-notifier/internal/notifier"
	"github.com/mediahook/catalog-notifier/internal/payload"
	"github.com/mediahook/catalog-notifier/internal/queue"
	"github.com/mediahook/catalog-notifier/internal/ratelimiter"
	"github.com/mediahook/catalog-notifier/internal/reconciler"
	"github.com/mediahook/catalog-notifier/internal/repository"
	"github.com/mediahook/catalog-notifier/internal/sink"
	"github.com/mediahook/catalog-notifier/internal/subscriber"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	dests, err := destination.NewStore(cfg.DestinationsFile, logger)
	if err != nil {
		logger.Fatal("failed to load destinations", zap.Error(err))
	}

	// ---- delivery history ----
	// Postgres when configured; otherwise an in-memory log so the service
	// works without a database.
	ctx := context.Background()
	var deliveries repository.DeliveryRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("database migrations applied")
		deliveries = repository.NewPgDeliveryRepository(pool)
	} else {
		logger.Info("no DATABASE_URL set, keeping delivery history in memory")
		deliveries = repository.NewMemoryDeliveryRepository()
	}

	// ---- core dependencies ----
	q := queue.New()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, q.Len)

	cat := catalog.NewHTTPClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, cfg.CatalogTimeout)
	builder := payload.NewBuilder(cfg.ServerID, cfg.ServerName, cfg.ServerURL)

	sinks := []sink.Sink{
		sink.NewDiscord(cfg.SinkTimeout),
		sink.NewGotify(cfg.SinkTimeout),
		sink.NewWebhook(cfg.SinkTimeout),
	}
	kinds := make([]string, len(sinks))
	for i, s := range sinks {
		kinds[i] = s.Kind()
	}
	limiter := ratelimiter.New(cfg.RateLimitPerSink, kinds)

	onSent, onFailed, onRetry, onDrop := m.ReconcilerHooks()
	rec := reconciler.New(
		q, cat, sinks, dests, builder, deliveries, limiter,
		cfg.RecheckInterval, cfg.MaxRetries, logger,
		reconciler.MetricHooks{
			OnSent:   onSent,
			OnFailed: onFailed,
			OnRetry:  onRetry,
			OnDrop:   onDrop,
		},
	)
	sub := subscriber.New(q, logger, m.ItemsEnqueued.Inc)

	// ---- background loops ----
	// Context for all background goroutines; cancelled on shutdown signal.
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	n := notifier.New(sub, rec, logger)
	n.Start(workerCtx)
	logger.Info("notifier started", zap.String("name", n.Name()))

	go func() {
		if err := dests.Watch(workerCtx); err != nil {
			logger.Warn("destinations watch stopped", zap.Error(err))
		}
	}()

	// ---- HTTP server ----
	router := api.NewRouter(sub, q, dests, deliveries, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// 1. Stop accepting new events.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Stop the reconcile loop and wait for the in-flight tick.
	// Pending queue entries are discarded on purpose.
	cancelWorkers()
	if err := n.Close(); err != nil {
		logger.Error("notifier close error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
