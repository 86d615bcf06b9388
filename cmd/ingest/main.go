package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/rugby-ingest/internal/config"
	"github.com/riskibarqy/rugby-ingest/internal/observability"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

type cli struct {
	cfg      config.Config
	logger   *logging.Logger
	validate *validator.Validate
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logging.Default().Error("command failed", "error", err)
		_ = logging.Default().Sync()
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{validate: validator.New(validator.WithRequiredStructEnabled())}

	root := &cobra.Command{
		Use:           "ingest",
		Short:         "Ingest ESPN rugby data into PostgreSQL",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newRunCmd(c),
		newLeaguesCmd(c),
		newSeasonsCmd(c),
		newMigrateCmd(c),
	)
	return root
}

// setup loads .env when present, then the environment config and the
// process logger.
func (c *cli) setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.ServiceVersion == "dev" {
		cfg.ServiceVersion = version
	}
	c.cfg = cfg

	c.logger = logging.New(cfg.LogLevel, cfg.LogFormat).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
	logging.SetDefault(c.logger)
	return nil
}

// observe starts tracing and profiling. The returned func flushes both.
func (c *cli) observe() (func(), error) {
	shutdownTracing, err := observability.InitUptrace(c.cfg, c.logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	stopProfiling, err := observability.InitPyroscope(c.cfg, c.logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}

	return func() {
		if err := stopProfiling(); err != nil {
			c.logger.Warn("stop pyroscope", "error", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			c.logger.Warn("shutdown uptrace", "error", err)
		}
	}, nil
}
