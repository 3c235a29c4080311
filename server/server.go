// Package server is the HTTP shell: it parses request parameters, calls the
// aggregation engine, the lookup service and the scorer, and serializes the
// results in the JSON shapes the web client expects.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/spektr-org/nyaya/config"
)

const shutdownTimeout = 5 * time.Second

// Options carries the collaborators that tests replace.
type Options struct {
	Logger   *slog.Logger        // defaults to slog.Default()
	Registry *prometheus.Registry // defaults to a fresh registry
	Tracing  config.TracingConfig
}

// Server owns the gin engine and the HTTP listener.
type Server struct {
	cfg     config.ServerConfig
	store   *Store
	logger  *slog.Logger
	metrics *Metrics
	router  *gin.Engine
}

// New wires middleware and routes around store.
func New(cfg config.ServerConfig, store *Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		cfg:     cfg,
		store:   store,
		logger:  opts.Logger,
		metrics: NewMetrics(opts.Registry),
		router:  gin.New(),
	}

	s.router.Use(gin.Recovery(), RequestID())
	if opts.Tracing.Enabled {
		s.router.Use(otelgin.Middleware(opts.Tracing.ServiceName))
	}
	s.router.Use(
		AccessLog(s.logger),
		s.metrics.Middleware(),
		CORS(cfg.CORSOrigins),
		RateLimit(NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)),
	)

	SetupRoutes(s.router, store, s.metrics)
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
