package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/georgemunganga/venuehub-backend/internal/platform/config"
	"github.com/georgemunganga/venuehub-backend/internal/platform/database"
	"github.com/georgemunganga/venuehub-backend/internal/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or roll back the database schema",
		SilenceUsage: true,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd.Context(), (*database.Migrator).Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd.Context(), (*database.Migrator).Down)
			},
		},
		&cobra.Command{
			Use:   "steps <n>",
			Short: "Apply n migrations, or roll back when n is negative",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("steps must be a non-zero integer, got %q", args[0])
				}
				return withMigrator(cmd.Context(), func(m *database.Migrator) error { return m.Steps(n) })
			},
		},
	)
	return root
}

func withMigrator(ctx context.Context, run func(*database.Migrator) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	zl := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zl.Sync()

	db, err := database.Open(ctx, cfg.Database.URL, database.PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := database.NewMigrator(db, zl)
	if err != nil {
		return err
	}
	if err := run(m); err != nil {
		zl.Error("migration failed", zap.Error(err))
		return err
	}
	return nil
}
