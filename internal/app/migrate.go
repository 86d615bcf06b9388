package app

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/riskibarqy/rugby-ingest/db"
	"github.com/riskibarqy/rugby-ingest/internal/config"
)

// NewMigrator reads the schema migrations compiled into the binary.
func NewMigrator(cfg config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(db.Migrations, db.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return m, nil
}
