package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/logger"
)

// countryCommand loads the risk-management view: the operated country list,
// plus the per-country assets and baseline assessments when --id is given.
func countryCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "country",
		Short: "Loads and prints the risk-management snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			orch := orchestrator.New(newClient(ctx, cfg), nil)

			if err := orch.LoadCountries(ctx); err != nil {
				logger.Fatal(ctx, "could not load countries", zap.Error(err))
			}

			countryID, _ := cmd.Flags().GetInt64("id")
			if countryID != 0 {
				if err := orch.LoadCountryDetail(ctx, countryID); err != nil {
					logger.Fatal(ctx, "could not load country detail", zap.Error(err))
				}
			}

			printJSON(ctx, orch.RiskView())
		},
	}

	cmd.Flags().Int64("id", 0, "Country ID to load assets and baseline assessments for")

	return cmd
}
