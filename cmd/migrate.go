package main

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "github.com/nailuj1992/polls-api"
	"github.com/nailuj1992/polls-api/internal/config"
	"github.com/nailuj1992/polls-api/pkg/logger"
)

// migrateRiver brings the River job tables to the latest version.
func migrateRiver(ctx context.Context, db *sql.DB) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
	}
	migrations := migrator.AllVersions()
	latestVersion := migrations[len(migrations)-1].Version
	currentVersion := 0
	currentMigrations, err := migrator.ExistingVersions(ctx)
	if err != nil {
		logger.Fatal(ctx, "could not get existing river queue migrations", zap.Error(err))
	}
	if len(currentMigrations) > 0 {
		currentVersion = currentMigrations[len(currentMigrations)-1].Version
	}
	if latestVersion <= currentVersion {
		logger.Info(ctx, "river queue tables are up to date", zap.Int("version", currentVersion))

		return
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latestVersion,
	})
	if err != nil {
		logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
	}
	logger.Info(ctx, "river queue tables migrated", zap.Int("version", latestVersion))
}

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose, then migrates River's tables.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			down, _ := cmd.Flags().GetBool("down")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "migrations need a non-transactional database handle")
			}

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			if down {
				if err := goose.Down(db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not roll back pgsql", zap.Error(err))
				}

				return
			}

			if err := goose.Up(db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			migrateRiver(ctx, db)
		},
	}

	cmd.Flags().Bool("down", false, "Roll back the most recent schema migration instead")

	return cmd
}
