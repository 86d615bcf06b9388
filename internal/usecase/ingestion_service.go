package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/league"
	"github.com/riskibarqy/rugby-ingest/internal/domain/match"
	"github.com/riskibarqy/rugby-ingest/internal/domain/player"
	"github.com/riskibarqy/rugby-ingest/internal/domain/stadium"
	"github.com/riskibarqy/rugby-ingest/internal/domain/standing"
	"github.com/riskibarqy/rugby-ingest/internal/domain/team"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const eventDateLayout = "20060102"

type Repositories struct {
	Leagues   league.Repository
	Stadiums  stadium.Repository
	Teams     team.Repository
	Standings standing.Repository
	Matches   match.Repository
	Players   player.Repository
}

// Report summarizes one run. It is returned partially filled when the run
// fails midway.
type Report struct {
	LeagueUID string
	Season    int
	Writes    []ingest.WriteResult
	Requests  int
}

func (r Report) Written(table string) int {
	total := 0
	for _, w := range r.Writes {
		if w.Table == table {
			total += w.Written
		}
	}
	return total
}

type IngestionService struct {
	resolver Resolver
	repos    Repositories
	logger   *logging.Logger
}

func NewIngestionService(resolver Resolver, repos Repositories, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		resolver: resolver,
		repos:    repos,
		logger:   logger.With("component", "ingestion_service"),
	}
}

// Run ingests one league season, or its latest gameday when
// run.FullSeason is false. Tables are written in dependency order and a
// failure stops the run; tables already written stay committed.
func (s *IngestionService) Run(ctx context.Context, run *ingest.Run) (report Report, err error) {
	if run == nil || run.LeagueID <= 0 {
		return Report{}, fmt.Errorf("%w: league id is required", ingest.ErrInvalidInput)
	}
	if run.Season < 0 {
		return Report{}, fmt.Errorf("%w: season must not be negative", ingest.ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run",
		attribute.Int64("league_id", run.LeagueID),
		attribute.Int("season", run.Season),
		attribute.Bool("full_season", run.FullSeason),
	)
	defer func() {
		report.Requests = run.Requests()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	n := newNormalizer(s.resolver, run, s.logger)

	season, err := s.ingestLeague(ctx, n, run, &report)
	if err != nil {
		return report, err
	}
	report.LeagueUID = season.UID
	report.Season = season.Season

	events, err := s.loadEvents(ctx, n, run, season)
	if err != nil {
		return report, err
	}

	if err := s.writeStep(ctx, &report, "stadiums", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items := normalizeStadiums(events)
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Stadiums.Insert(ctx, run, items) }, nil
	}); err != nil {
		return report, err
	}

	if err := s.ingestStandings(ctx, n, run, season, &report); err != nil {
		return report, err
	}

	if err := s.writeStep(ctx, &report, "matches", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items, err := n.normalizeMatches(ctx, events, season.UID)
		if err != nil {
			return 0, nil, err
		}
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Matches.InsertMatches(ctx, run, items) }, nil
	}); err != nil {
		return report, err
	}

	if err := s.writeStep(ctx, &report, "team_match_stats", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items, err := n.normalizeTeamStats(ctx, events)
		if err != nil {
			return 0, nil, err
		}
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Matches.InsertTeamStats(ctx, run, items) }, nil
	}); err != nil {
		return report, err
	}

	if err := s.ingestPlayers(ctx, n, run, season, events, &report); err != nil {
		return report, err
	}

	s.logger.InfoContext(ctx, "ingestion run finished",
		"league_uid", report.LeagueUID,
		"season", report.Season,
		"tables", len(report.Writes),
		"requests", run.Requests(),
		"elapsed", time.Since(run.StartedAt).String(),
	)
	return report, nil
}

func (s *IngestionService) ingestLeague(ctx context.Context, n *normalizer, run *ingest.Run, report *Report) (league.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ingestLeague")
	defer span.End()

	var general leaguePage
	if err := s.resolver.GetEndpoint(ctx, run, leagueEndpoint("league_info", run.LeagueID), &general); err != nil {
		return league.Season{}, fmt.Errorf("fetch league %d: %w", run.LeagueID, err)
	}

	year := run.Season
	if year == 0 {
		year = general.Season.Year
	}
	if year == 0 {
		return league.Season{}, fmt.Errorf("%w: league %d has no current season", ingest.ErrResolution, run.LeagueID)
	}

	var calendar calendarPage
	if err := s.resolver.GetEndpoint(ctx, run, seasonEndpoint("league_calendar_by_season", run.LeagueID, year), &calendar); err != nil {
		return league.Season{}, fmt.Errorf("fetch calendar: %w", err)
	}
	candidates, err := parseCalendarDates(calendar)
	if err != nil {
		return league.Season{}, err
	}

	start, end, err := ResolveSeasonBounds(ctx, candidates, year, eventSeasonProbe(s.resolver, run, run.LeagueID))
	if err != nil {
		return league.Season{}, err
	}

	var seasonPage leagueSeasonPage
	if err := s.resolver.GetEndpoint(ctx, run, seasonEndpoint("league_season_info", run.LeagueID, year), &seasonPage); err != nil {
		return league.Season{}, fmt.Errorf("fetch league season: %w", err)
	}
	if seasonPage.Year == 0 {
		seasonPage.Year = year
	}

	item, err := buildLeagueSeason(run.LeagueID, general, seasonPage, start, end)
	if err != nil {
		return league.Season{}, err
	}
	n.logger.InfoContext(ctx, "season bounds resolved",
		"league_uid", item.UID,
		"season", item.Season,
		"start", item.StartDate.Format(time.DateOnly),
		"end", item.EndDate.Format(time.DateOnly),
	)

	res, err := s.repos.Leagues.Insert(ctx, run, []league.Season{item})
	if err != nil {
		return league.Season{}, err
	}
	report.Writes = append(report.Writes, res)
	return item, nil
}

func (s *IngestionService) loadEvents(ctx context.Context, n *normalizer, run *ingest.Run, season league.Season) ([]eventPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.loadEvents")
	defer span.End()

	endpoint := leagueEndpoint("events_url_by_dates", run.LeagueID)
	if run.FullSeason {
		endpoint = endpoint.withQuery("dates", season.StartDate.Format(eventDateLayout)+"-"+season.EndDate.Format(eventDateLayout))
	}

	refs, err := collectEndpointRefs(ctx, s.resolver, run, endpoint)
	if err != nil {
		return nil, err
	}
	events, err := n.fetchEvents(ctx, refs)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("events", len(events)))
	return events, nil
}

func (s *IngestionService) ingestStandings(ctx context.Context, n *normalizer, run *ingest.Run, season league.Season, report *Report) error {
	pages, err := n.fetchStandingsPages(ctx, run.LeagueID, season.Season)
	if err != nil {
		return err
	}

	if err := s.writeStep(ctx, report, "teams", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items, err := n.normalizeTeams(ctx, pages)
		if err != nil {
			return 0, nil, err
		}
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Teams.Upsert(ctx, run, items) }, nil
	}); err != nil {
		return err
	}

	return s.writeStep(ctx, report, "standings", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items, err := normalizeStandings(pages, season.UID)
		if err != nil {
			return 0, nil, err
		}
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Standings.Upsert(ctx, run, items) }, nil
	})
}

func (s *IngestionService) ingestPlayers(ctx context.Context, n *normalizer, run *ingest.Run, season league.Season, events []eventPage, report *Report) error {
	rosters, err := n.fetchRosters(ctx, events)
	if err != nil {
		return err
	}
	if len(rosters) == 0 {
		s.logger.WarnContext(ctx, "no rosters available, skipping player tables", "league_uid", season.UID)
		return nil
	}

	if err := s.writeStep(ctx, report, "players", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		items, err := n.normalizePlayers(ctx, rosters)
		if err != nil {
			return 0, nil, err
		}
		return len(items), func() (ingest.WriteResult, error) { return s.repos.Players.UpsertPlayers(ctx, run, items) }, nil
	}); err != nil {
		return err
	}

	memberships, stats, err := n.normalizeAppearances(ctx, rosters, season.Season)
	if err != nil {
		return err
	}
	if err := s.writeStep(ctx, report, "player_team", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		return len(memberships), func() (ingest.WriteResult, error) { return s.repos.Players.InsertTeamMemberships(ctx, run, memberships) }, nil
	}); err != nil {
		return err
	}
	return s.writeStep(ctx, report, "player_match_stats", func(ctx context.Context) (int, func() (ingest.WriteResult, error), error) {
		return len(stats), func() (ingest.WriteResult, error) { return s.repos.Players.InsertMatchStats(ctx, run, stats) }, nil
	})
}

// writeStep normalizes one table inside its own span and writes it unless
// the normalized set is empty.
func (s *IngestionService) writeStep(
	ctx context.Context,
	report *Report,
	table string,
	build func(ctx context.Context) (int, func() (ingest.WriteResult, error), error),
) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.write", attribute.String("table", table))
	defer span.End()

	count, write, err := build(ctx)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("normalize %s: %w", table, err)
	}
	if count == 0 {
		s.logger.WarnContext(ctx, "nothing to write", "table", table)
		return nil
	}

	res, err := write()
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int("submitted", res.Submitted), attribute.Int("written", res.Written))
	report.Writes = append(report.Writes, res)
	return nil
}
