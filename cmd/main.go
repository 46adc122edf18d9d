// Package main provides the CLI entrypoint for the GEMS security dashboard
// client. It wires subcommands (login, dashboard, country, asset, watch),
// loads configuration, and initializes logging.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/pkg/gemsapi/gemshttp"
	"github.com/Ottocr/GEMS/pkg/logger"
)

// newClient creates the backend API client from configuration values.
func newClient(ctx context.Context, cfg *config.Config) *gemshttp.Client {
	return gemshttp.New(ctx, &http.Client{Timeout: cfg.API.Timeout}, gemshttp.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
	})
}

// printJSON renders a command result on stdout.
func printJSON(ctx context.Context, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Fatal(ctx, "could not render output", zap.Error(err))
	}

	fmt.Println(string(out)) //nolint: forbidigo
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "gems",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		loginCommand(cfg),
		dashboardCommand(cfg),
		countryCommand(cfg),
		assetCommand(cfg),
		watchCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
