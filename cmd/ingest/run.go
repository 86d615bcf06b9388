package main

import (
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/app"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type runOptions struct {
	LeagueID int64 `validate:"required,gt=0"`
	Season   int   `validate:"gte=0,lte=2100"`
	Gameday  bool
}

func newRunCmd(c *cli) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest one league season, or its latest gameday",
		Example: `  ingest run --league 270559 --season 2024
  ingest run --league 270559 --gameday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validate.Struct(opts); err != nil {
				return fmt.Errorf("%w: %v", ingest.ErrInvalidInput, err)
			}

			cleanup, err := c.observe()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, span := otel.Tracer("rugby-ingest/cmd/ingest").Start(cmd.Context(), "ingest.run")
			defer span.End()
			span.SetAttributes(
				attribute.Int64("league_id", opts.LeagueID),
				attribute.Int("season", opts.Season),
				attribute.Bool("gameday", opts.Gameday),
			)

			db, err := app.OpenDB(ctx, c.cfg)
			if err != nil {
				c.logger.ErrorContext(ctx, "open database", "error", err)
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service, err := app.NewIngestionService(db, c.cfg, c.logger)
			if err != nil {
				return err
			}

			run := ingest.NewRun(opts.LeagueID, opts.Season, !opts.Gameday)
			report, err := service.Run(ctx, run)
			c.logger.InfoContext(ctx, "total api requests", "requests", run.Requests())
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				c.logger.ErrorContext(ctx, "ingestion run failed", "league_id", opts.LeagueID, "error", err)
				return err
			}

			for _, w := range report.Writes {
				c.logger.InfoContext(ctx, "table ingested",
					"table", w.Table,
					"policy", w.Policy.String(),
					"submitted", w.Submitted,
					"written", w.Written,
				)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.LeagueID, "league", 0, "ESPN league id")
	cmd.Flags().IntVar(&opts.Season, "season", 0, "season year (default: current season)")
	cmd.Flags().BoolVar(&opts.Gameday, "gameday", false, "ingest only the latest gameday")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}
