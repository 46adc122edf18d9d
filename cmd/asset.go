package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/internal/orchestrator"
	"github.com/Ottocr/GEMS/pkg/domain"
	"github.com/Ottocr/GEMS/pkg/gemsapi"
	"github.com/Ottocr/GEMS/pkg/logger"
)

// assetCommand groups the asset operations: list, show, report-issue and
// answer.
func assetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Asset list, detail and write operations",
	}

	cmd.AddCommand(
		assetListCommand(cfg),
		assetShowCommand(cfg),
		assetReportIssueCommand(cfg),
		assetAnswerCommand(cfg),
	)

	return cmd
}

func assetListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Loads and prints the asset list",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			orch := orchestrator.New(newClient(ctx, cfg), nil)
			if err := orch.LoadAssets(ctx); err != nil {
				logger.Fatal(ctx, "could not load assets", zap.Error(err))
			}

			printJSON(ctx, orch.AssetView())
		},
	}
}

func assetShowCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Loads one asset with its barriers and risk matrix",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			assetID, _ := cmd.Flags().GetInt64("id")

			orch := orchestrator.New(newClient(ctx, cfg), nil)
			if err := orch.LoadAssetDetail(ctx, assetID); err != nil {
				logger.Fatal(ctx, "could not load asset detail", zap.Error(err))
			}

			printJSON(ctx, orch.AssetView())
		},
	}

	cmd.Flags().Int64("id", 0, "Asset ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func assetReportIssueCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report-issue",
		Short: "Files an issue against a barrier of an asset",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			assetID, _ := cmd.Flags().GetInt64("asset")
			barrierID, _ := cmd.Flags().GetInt64("barrier")
			description, _ := cmd.Flags().GetString("description")
			impact, _ := cmd.Flags().GetString("impact")

			orch := orchestrator.New(newClient(ctx, cfg), nil)
			err := orch.ReportBarrierIssue(ctx, gemsapi.BarrierIssueReport{
				AssetID:      assetID,
				BarrierID:    barrierID,
				Description:  description,
				ImpactRating: domain.BarrierImpact(impact),
			})
			if err != nil {
				logger.Fatal(ctx, "could not report barrier issue", zap.Error(err))
			}

			logger.Info(ctx, "barrier issue filed")
		},
	}

	cmd.Flags().Int64("asset", 0, "Asset ID")
	cmd.Flags().Int64("barrier", 0, "Barrier ID")
	cmd.Flags().String("description", "", "Issue description")
	cmd.Flags().String("impact", string(domain.BarrierImpactNone),
		"Impact rating (NO_IMPACT, MINIMAL, SUBSTANTIAL, MAJOR, COMPROMISED)")
	_ = cmd.MarkFlagRequired("asset")
	_ = cmd.MarkFlagRequired("barrier")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func assetAnswerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Submits a vulnerability questionnaire answer for an asset",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			assetID, _ := cmd.Flags().GetInt64("asset")
			questionID, _ := cmd.Flags().GetInt64("question")
			answer, _ := cmd.Flags().GetString("answer")

			orch := orchestrator.New(newClient(ctx, cfg), nil)
			if err := orch.UpdateVulnerabilityAnswer(ctx, assetID, questionID, answer); err != nil {
				logger.Fatal(ctx, "could not update vulnerability answer", zap.Error(err))
			}

			logger.Info(ctx, "vulnerability answer submitted")
		},
	}

	cmd.Flags().Int64("asset", 0, "Asset ID")
	cmd.Flags().Int64("question", 0, "Question ID")
	cmd.Flags().String("answer", "", "Answer value")
	_ = cmd.MarkFlagRequired("asset")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}
