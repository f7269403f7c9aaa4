package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KarpovAlexandrGo/taskboard/internal/app"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/postgres"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/sqlite"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply storage migrations",
	Long: `Creates or upgrades the tables of the configured storage driver.
Postgres uses the embedded goose migrations, SQLite uses gorm AutoMigrate.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	switch cfg.StorageDriver {
	case app.DriverPostgres:
		pool, err := app.InitDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
	case app.DriverSQLite:
		db, err := sqlite.NewDB(cfg.SQLitePath)
		if err != nil {
			return err
		}
		if err := sqlite.NewSnapshotRepository(db).Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("storage driver %q has nothing to migrate", cfg.StorageDriver)
	}

	logger.Log.WithField("driver", cfg.StorageDriver).Info("Migrations applied")
	return nil
}

