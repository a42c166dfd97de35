package main

import (
	"context"
	"fmt"
	"shortener/internal/config"
	"shortener/pkg/domain"
	"shortener/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// apiKeyCommand constructs the 'api-key' subcommand that issues a new API key
// and prints its secret. The secret is shown only once.
func apiKeyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-key",
		Short: "Issues a new API key",
		Run: func(cmd *cobra.Command, args []string) {
			name, _ := cmd.Flags().GetString("name")

			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stored, err := strg.StoreAPIKey(ctx, domain.APIKey{
				Key:     uuid.NewString(),
				Name:    name,
				Enabled: true,
			})
			if err != nil {
				logger.Fatal(ctx, "could not store api key", zap.Error(err))
			}

			fmt.Println(stored.Key) //nolint: forbidigo
		},
	}

	cmd.Flags().String("name", "", "Human-readable label for the key")

	return cmd
}
