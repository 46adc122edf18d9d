package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/internal/geo"
	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/logger"
	"github.com/Ottocr/GEMS/pkg/store"
)

// dashboardCommand loads the global summary and prints the resulting
// snapshot. With --geojson it additionally fetches the country boundaries
// and prints the enriched overlay.
func dashboardCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Loads and prints the global dashboard snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			client := newClient(ctx, cfg)
			orch := orchestrator.New(client, nil)

			if err := orch.LoadDashboard(ctx); err != nil {
				logger.Fatal(ctx, "could not load dashboard", zap.Error(err))
			}
			snap := orch.Dashboard()

			withOverlay, _ := cmd.Flags().GetBool("geojson")
			if !withOverlay {
				printJSON(ctx, snap)

				return
			}

			printJSON(ctx, struct {
				Snapshot store.Snapshot[domain.DashboardData] `json:"snapshot"`
				Overlay  *domain.FeatureCollection            `json:"overlay,omitempty"`
			}{
				Snapshot: snap,
				Overlay:  loadOverlay(cmd, cfg, snap.Data.Countries),
			})
		},
	}

	cmd.Flags().Bool("geojson", false, "Also fetch and enrich the country boundary overlay")

	return cmd
}

// loadOverlay fetches and enriches the boundary overlay. A broken or
// missing overlay is logged and reported as nil; the dashboard data itself
// still renders.
func loadOverlay(cmd *cobra.Command, cfg *config.Config, countries []domain.Country) *domain.FeatureCollection {
	ctx := cmd.Context()

	raw, err := newClient(ctx, cfg).OperatedCountriesGeoJSON(ctx)
	if err != nil {
		logger.Warn(ctx, "could not fetch country boundaries", zap.Error(err))

		return nil
	}

	boundaries, err := geo.ParseOverlay(raw)
	if err != nil {
		logger.Warn(ctx, "could not parse country boundaries", zap.Error(err))

		return nil
	}

	return geo.Enrich(boundaries, geo.CountryIndex(countries))
}
