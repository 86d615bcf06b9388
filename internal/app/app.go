package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/rugby-ingest/external/espn"
	"github.com/riskibarqy/rugby-ingest/internal/config"
	"github.com/riskibarqy/rugby-ingest/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	"github.com/riskibarqy/rugby-ingest/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// OpenDB opens the traced postgres handle shared by every write of a run.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", withApplicationName(cfg.DBURL, cfg.ServiceName),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// NewResolver builds the ESPN client from the embedded or configured
// endpoint catalog.
func NewResolver(cfg config.Config, logger *logging.Logger) (*espn.Client, error) {
	catalog, err := espn.LoadCatalog(cfg.ESPNEndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("load endpoint catalog: %w", err)
	}
	if cfg.ESPNBaseURL != "" {
		catalog = catalog.WithBaseURL(cfg.ESPNBaseURL)
	}

	return espn.NewClient(espn.ClientConfig{
		Catalog:   catalog,
		Timeout:   cfg.ESPNTimeout,
		RateLimit: cfg.ESPNRateLimit,
		RateBurst: cfg.ESPNRateBurst,
		Logger:    logger,
	}), nil
}

func NewRepositories(db *sqlx.DB, cfg config.Config, logger *logging.Logger) usecase.Repositories {
	writer := postgres.NewWriter(postgres.SQLX(db), cfg.IngestBatchSize, logger)
	return usecase.Repositories{
		Leagues:   postgres.NewLeagueRepository(writer),
		Stadiums:  postgres.NewStadiumRepository(writer),
		Teams:     postgres.NewTeamRepository(writer),
		Standings: postgres.NewStandingRepository(writer),
		Matches:   postgres.NewMatchRepository(writer),
		Players:   postgres.NewPlayerRepository(writer),
	}
}

func NewIngestionService(db *sqlx.DB, cfg config.Config, logger *logging.Logger) (*usecase.IngestionService, error) {
	resolver, err := NewResolver(cfg, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewIngestionService(resolver, NewRepositories(db, cfg, logger), logger), nil
}

func NewCatalogService(cfg config.Config, logger *logging.Logger) (*usecase.CatalogService, error) {
	resolver, err := NewResolver(cfg, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewCatalogService(resolver, logger), nil
}
