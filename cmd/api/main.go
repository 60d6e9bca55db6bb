package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"locallibrary/internal/author"
	"locallibrary/internal/book"
	"locallibrary/internal/config"
	"locallibrary/internal/httpx"
	"locallibrary/internal/logging"
	"locallibrary/internal/store/memstore"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, closeStore := mustOpenStores(ctx, cfg, logger)
	defer closeStore()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := newRouter(s, routerOptions{
		allowedOrigins: cfg.AllowedOrigins,
		enableHSTS:     !cfg.Development(),
		rateLimiter:    httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).TrustProxies(cfg.TrustedProxies...),
		registry:       registry,
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func mustOpenStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (stores, func()) {
	if cfg.Store == config.StoreMemory {
		catalog := memstore.Sample()
		return stores{
			authors:   catalog.Authors(),
			books:     catalog.Books(),
			instances: catalog.Instances(),
			db:        catalog,
		}, func() {}
	}

	pool := mustOpenDB(ctx, cfg.DatabaseDSN, logger)
	return stores{
		authors:   author.NewPostgresRepo(pool, cfg.QueryTimeout),
		books:     book.NewPostgresRepo(pool, cfg.QueryTimeout),
		instances: book.NewInstancePostgresRepo(pool, cfg.QueryTimeout),
		db:        pool,
	}, pool.Close
}

func mustOpenDB(ctx context.Context, dsn string, logger *zap.Logger) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.String("dsn", config.RedactDSN(dsn)), zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}
