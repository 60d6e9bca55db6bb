package main

import (
	"context"
	"net/http"
	"time"

	"locallibrary/internal/author"
	"locallibrary/internal/book"
	"locallibrary/internal/httpx"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// pinger reports whether the backing store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type stores struct {
	authors   author.Repository
	books     book.Repository
	instances book.InstanceRepository
	db        pinger
}

type routerOptions struct {
	allowedOrigins []string
	enableHSTS     bool
	rateLimiter    *httpx.RateLimitMiddleware
	registry       *prometheus.Registry
}

func newRouter(s stores, opts routerOptions, logger *zap.Logger) http.Handler {
	metrics := httpx.NewMetrics(opts.registry)

	authorHandler := author.NewHTTPHandler(author.NewService(s.authors, logger), logger)
	bookHandler := book.NewHTTPHandler(book.NewService(s.books, s.instances), logger)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(opts.registry, promhttp.HandlerOpts{}))

	router.Handle("GET /authors", metrics.Instrument("authors", http.HandlerFunc(authorHandler.List)))
	router.Handle("GET /books/{id}", metrics.Instrument("book_detail", http.HandlerFunc(bookHandler.Get)))

	middlewares := []func(http.Handler) http.Handler{
		httpx.RecoveryMiddleware(logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(opts.enableHSTS),
		httpx.CORSMiddleware(opts.allowedOrigins),
	}
	if opts.rateLimiter != nil {
		middlewares = append(middlewares, opts.rateLimiter.Middleware)
	}
	return httpx.Chain(router, middlewares...)
}
