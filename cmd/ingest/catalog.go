package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/riskibarqy/rugby-ingest/internal/app"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/spf13/cobra"
)

func newLeaguesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "leagues",
		Short: "List the leagues the upstream exposes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := app.NewCatalogService(c.cfg, c.logger)
			if err != nil {
				return err
			}

			run := ingest.NewRun(0, 0, false)
			leagues, err := service.ListLeagues(cmd.Context(), run)
			c.logger.Info("total api requests", "requests", run.Requests())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME")
			for _, l := range leagues {
				fmt.Fprintf(w, "%d\t%s\n", l.ID, l.Name)
			}
			return w.Flush()
		},
	}
}

func newSeasonsCmd(c *cli) *cobra.Command {
	var leagueID int64

	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "List the seasons of a league",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.validate.Var(leagueID, "required,gt=0"); err != nil {
				return fmt.Errorf("%w: --league: %v", ingest.ErrInvalidInput, err)
			}
			service, err := app.NewCatalogService(c.cfg, c.logger)
			if err != nil {
				return err
			}

			run := ingest.NewRun(leagueID, 0, false)
			seasons, err := service.ListSeasons(cmd.Context(), run, leagueID)
			c.logger.Info("total api requests", "requests", run.Requests())
			if err != nil {
				return err
			}
			for _, year := range seasons {
				fmt.Fprintln(cmd.OutOrStdout(), year)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&leagueID, "league", 0, "ESPN league id")
	_ = cmd.MarkFlagRequired("league")
	return cmd
}
