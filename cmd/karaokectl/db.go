package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/karaoke-backend/internal/app"
	"github.com/heartmarshall/karaoke-backend/internal/config"
)

const dbTimeout = 5 * time.Minute

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, cfg)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down|status",
		Short:     "Apply, roll back or inspect schema migrations",
		ValidArgs: []string{"up", "down", "status"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
			defer cancel()

			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			return app.Migrate(ctx, pool, args[0])
		},
	}
}

func newCleanupTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), dbTimeout)
			defer cancel()

			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := token.New(pool).DeleteExpired(ctx)
			if err != nil {
				return fmt.Errorf("cleanup tokens: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked refresh tokens.\n", n)
			return nil
		},
	}
}
