package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/diewo77/go-relief/internal/config"
	"github.com/diewo77/go-relief/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// requiredTables must exist once the schema is prepared.
var requiredTables = []string{"users", "reliefcenters", "volunteers", "victims", "donations", "supplies", "alerts"}

// Migrate prepares the schema. With SQL migrations enabled on postgres the embedded
// golang-migrate files are applied; otherwise gorm AutoMigrate is used.
func Migrate(conn *gorm.DB, cfg *config.Config, log *logrus.Logger) error {
	if cfg.App.Migrations && cfg.Database.Driver == config.DriverPostgres {
		log.Info("running sql migrations")
		if err := runSQLMigrations(cfg.Database.URL()); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if cfg.App.Migrations {
			log.WithField("driver", cfg.Database.Driver).Warn("sql migrations target postgres; using AutoMigrate")
		}
		if err := AutoMigrate(conn); err != nil {
			return err
		}
	}
	for _, table := range requiredTables {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

// AutoMigrate creates or updates every model table.
func AutoMigrate(conn *gorm.DB) error {
	for _, m := range models.All() {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// runSQLMigrations applies the embedded migrations to the postgres database at url.
func runSQLMigrations(url string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
