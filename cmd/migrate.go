package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"path/filepath"

	"github.com/frahmantamala/recognition/internal"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := goose.OpenDBWithDriver(sqlxDriverName(cfg.Database.Driver), cfg.Database.Source)
	if err != nil {
		log.Fatalf("goose: failed to open DB: %v\n", err)
	}
	defer db.Close()

	dir, err := prepareGoose(cfg.Database.Driver)
	if err != nil {
		log.Fatalf("goose: %v", err)
	}

	command := "up"
	if migrateRollback {
		command = "down"
	}

	if err := goose.RunContext(ctx, command, db, dir); err != nil {
		log.Fatalf("goose %s: %v", command, err)
	}

	return nil
}

// prepareGoose sets the dialect and resolves the per-driver migration
// directory; sqlite and postgres DDL differ enough to keep separate lineages.
func prepareGoose(driver string) (string, error) {
	goose.SetTableName("schema_migrations")

	switch driver {
	case internal.DriverPostgres:
		if err := goose.SetDialect("postgres"); err != nil {
			return "", err
		}
		return filepath.Join(migrateDir, "postgres"), nil
	default:
		if err := goose.SetDialect("sqlite3"); err != nil {
			return "", err
		}
		return filepath.Join(migrateDir, "sqlite"), nil
	}
}

// ensureSchema runs pending migrations at server start so a fresh single-file
// sqlite database is usable immediately.
func ensureSchema(db *sql.DB, driver string) error {
	dir, err := prepareGoose(driver)
	if err != nil {
		return err
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
