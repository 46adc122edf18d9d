// Package ops exposes the watch-mode HTTP surface: Prometheus metrics,
// pprof and read-only JSON snapshots of the domain stores.
package ops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/httpx"
	"github.com/Ottocr/GEMS/pkg/logger"
)

// Options holds the knobs of the ops HTTP server.
type Options struct {
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MetricsPath       string
}

// NewOptions maps the loaded configuration onto server options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Ops.Addr,
		ReadTimeout:       cfg.Ops.ReadTimeout,
		ReadHeaderTimeout: cfg.Ops.ReadHeaderTimeout,
		WriteTimeout:      cfg.Ops.WriteTimeout,
		IdleTimeout:       cfg.Ops.IdleTimeout,
		MetricsPath:       cfg.Ops.MetricsPath,
	}
}

// Server is the ops HTTP server. It never talks to the backend itself; the
// snapshot endpoints only read whatever the refresh loop last committed.
type Server struct {
	httpServer *http.Server
}

// New wires the ops routes and returns a server ready to Start.
func New(orch orchestrator.Orchestrator, options Options) *Server {
	mux := http.NewServeMux()

	mux.Handle(options.MetricsPath, promhttp.Handler())
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", httpx.PprofMux()))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/snapshots/dashboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, orch.Dashboard())
	})
	mux.HandleFunc("/snapshots/risk", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, orch.RiskView())
	})
	mux.HandleFunc("/snapshots/asset", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, orch.AssetView())
	})

	var handler http.Handler = mux
	handler = httpx.WithCORS(handler)
	handler = httpx.WithLogger(handler)
	if options.WriteTimeout > 0 {
		handler = http.TimeoutHandler(handler, options.WriteTimeout, "request timed out")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              options.Addr,
			Handler:           handler,
			ReadTimeout:       options.ReadTimeout,
			ReadHeaderTimeout: options.ReadHeaderTimeout,
			WriteTimeout:      options.WriteTimeout,
			IdleTimeout:       options.IdleTimeout,
		},
	}
}

// Start blocks serving until the listener fails or Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	logger.Info(ctx, "starting ops server", zap.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ops server failed: %w", err)
	}

	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shut down ops server: %w", err)
	}

	return nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(ctx, "could not encode snapshot", zap.Error(err))
	}
}
