package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/internal/ops"
	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/metrics"
	"github.com/Ottocr/GEMS/pkg/serrors"
)

// setupOpsServer starts the ops HTTP server in the background and returns
// its shutdown function.
func setupOpsServer(ctx context.Context, orch orchestrator.Orchestrator, cfg *config.Config) func(ctx context.Context) {
	server := ops.New(orch, ops.NewOptions(cfg))

	go func() {
		if err := server.Start(ctx); err != nil {
			logger.Error(ctx, "could not start ops server", zap.Error(err))
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

// refresh runs one refresh pass over the periodically watched domains. An
// authentication expiry aborts the whole loop; any other failure is already
// recorded in the store and the pass continues.
func refresh(ctx context.Context, orch orchestrator.Orchestrator) error {
	loaders := []func(context.Context) error{
		orch.LoadDashboard,
		orch.LoadCountries,
		orch.LoadAssets,
	}
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			if errors.Is(err, serrors.ErrUnauthorized) {
				return err
			}
		}
	}

	return nil
}

// watchCommand runs the long-lived mode: the domains are refreshed on a
// fixed interval while the ops server exposes metrics, pprof and snapshots.
func watchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically refreshes the domains and serves ops endpoints",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			fetches, err := metrics.NewFetchRecorder(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create fetch recorder", zap.Error(err))
			}

			orch := orchestrator.New(newClient(ctx, cfg), fetches)
			stopOpsServer := setupOpsServer(ctx, orch, cfg)

			if err := refresh(ctx, orch); err != nil {
				logger.Error(ctx, "initial refresh failed, re-login required", zap.Error(err))
			}

			ticker := time.NewTicker(cfg.Watch.Interval)
			defer ticker.Stop()

		loop:
			for {
				select {
				case <-ctx.Done():
					break loop
				case <-ticker.C:
					if err := refresh(ctx, orch); err != nil {
						logger.Error(ctx, "refresh aborted, re-login required", zap.Error(err))

						break loop
					}
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
