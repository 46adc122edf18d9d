package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ottocr/GEMS/internal/config"
	"github.com/Ottocr/GEMS/pkg/logger"
)

// loginCommand exchanges credentials for an API token and prints it, ready
// to be placed into the config file or API_TOKEN.
func loginCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchanges credentials for an API token",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			token, err := newClient(ctx, cfg).Login(ctx, username, password)
			if err != nil {
				logger.Fatal(ctx, "login failed", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("username", "", "Backend account username")
	cmd.Flags().String("password", "", "Backend account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
