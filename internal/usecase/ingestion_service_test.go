package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/league"
	"github.com/riskibarqy/rugby-ingest/internal/domain/match"
	"github.com/riskibarqy/rugby-ingest/internal/domain/player"
	"github.com/riskibarqy/rugby-ingest/internal/domain/stadium"
	"github.com/riskibarqy/rugby-ingest/internal/domain/standing"
	"github.com/riskibarqy/rugby-ingest/internal/domain/team"
	leaguemock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/league"
	matchmock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/player"
	stadiummock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/stadium"
	standingmock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/standing"
	teammock "github.com/riskibarqy/rugby-ingest/internal/mocks/domain/team"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func written[T any](table string, policy ingest.Policy, sink *[]T) func(context.Context, *ingest.Run, []T) (ingest.WriteResult, error) {
	return func(_ context.Context, _ *ingest.Run, items []T) (ingest.WriteResult, error) {
		*sink = append(*sink, items...)
		return ingest.WriteResult{Table: table, Policy: policy, Submitted: len(items), Written: len(items)}, nil
	}
}

type scenarioSinks struct {
	leagues     []league.Season
	stadiums    []stadium.Stadium
	teams       []team.Team
	standings   []standing.Standing
	matches     []match.Match
	teamStats   []match.TeamStat
	players     []player.Player
	memberships []player.TeamMembership
	matchStats  []player.MatchStat
}

type scenarioMocks struct {
	leagues   *leaguemock.Repository
	stadiums  *stadiummock.Repository
	teams     *teammock.Repository
	standings *standingmock.Repository
	matches   *matchmock.Repository
	players   *playermock.Repository
}

func newScenarioMocks(t *testing.T) scenarioMocks {
	return scenarioMocks{
		leagues:   leaguemock.NewRepository(t),
		stadiums:  stadiummock.NewRepository(t),
		teams:     teammock.NewRepository(t),
		standings: standingmock.NewRepository(t),
		matches:   matchmock.NewRepository(t),
		players:   playermock.NewRepository(t),
	}
}

func (m scenarioMocks) repositories() Repositories {
	return Repositories{
		Leagues:   m.leagues,
		Stadiums:  m.stadiums,
		Teams:     m.teams,
		Standings: m.standings,
		Matches:   m.matches,
		Players:   m.players,
	}
}

func (m scenarioMocks) expectAll(run *ingest.Run, s *scenarioSinks) {
	m.leagues.On("Insert", mock.Anything, run, mock.Anything).Return(written("leagues", ingest.PolicyInsertOrIgnore, &s.leagues)).Once()
	m.stadiums.On("Insert", mock.Anything, run, mock.Anything).Return(written("stadiums", ingest.PolicyInsertOrIgnore, &s.stadiums)).Once()
	m.teams.On("Upsert", mock.Anything, run, mock.Anything).Return(written("teams", ingest.PolicyUpsert, &s.teams)).Once()
	m.standings.On("Upsert", mock.Anything, run, mock.Anything).Return(written("standings", ingest.PolicyUpsert, &s.standings)).Once()
	m.matches.On("InsertMatches", mock.Anything, run, mock.Anything).Return(written("matches", ingest.PolicyInsertIfAbsent, &s.matches)).Once()
	m.matches.On("InsertTeamStats", mock.Anything, run, mock.Anything).Return(written("team_match_stats", ingest.PolicyInsertIfAbsent, &s.teamStats)).Once()
	m.players.On("UpsertPlayers", mock.Anything, run, mock.Anything).Return(written("players", ingest.PolicyUpsert, &s.players)).Once()
	m.players.On("InsertTeamMemberships", mock.Anything, run, mock.Anything).Return(written("player_team", ingest.PolicyInsertOrIgnore, &s.memberships)).Once()
	m.players.On("InsertMatchStats", mock.Anything, run, mock.Anything).Return(written("player_match_stats", ingest.PolicyInsertIfAbsent, &s.matchStats)).Once()
}

func TestIngestionService_Run_FullSeasonScenario(t *testing.T) {
	t.Parallel()

	resolver := newFakeResolver(scenarioPages(true))
	mocks := newScenarioMocks(t)
	run := ingest.NewRun(scenarioLeague, 2024, true)
	var sinks scenarioSinks
	mocks.expectAll(run, &sinks)

	service := NewIngestionService(resolver, mocks.repositories(), logging.NewNop())
	report, err := service.Run(context.Background(), run)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	counts := map[string]int{
		"leagues":            1,
		"stadiums":           1,
		"teams":              2,
		"standings":          2,
		"matches":            1,
		"team_match_stats":   2,
		"players":            2,
		"player_team":        2,
		"player_match_stats": 2,
	}
	for table, want := range counts {
		if got := report.Written(table); got != want {
			t.Fatalf("unexpected %s count: got=%d want=%d", table, got, want)
		}
	}
	if report.Requests == 0 || report.Requests != run.Requests() {
		t.Fatalf("unexpected request count: report=%d run=%d", report.Requests, run.Requests())
	}

	season := sinks.leagues[0]
	if report.LeagueUID != season.UID || season.Season != 2024 || !season.HasStandings {
		t.Fatalf("unexpected league season: %+v", season)
	}
	if season.StartDate.Day() != 20 || season.EndDate.Day() != 27 {
		t.Fatalf("unexpected bounds: %s..%s", season.StartDate, season.EndDate)
	}

	m := sinks.matches[0]
	if m.WinnerESPNID != 20 || m.LoserESPNID != 10 || m.WinnerScore != 24 || m.LoserScore != 17 || m.IsDraw {
		t.Fatalf("unexpected match result: %+v", m)
	}
	if m.StadiumESPNID == nil || *m.StadiumESPNID != 77 {
		t.Fatalf("unexpected stadium: %v", m.StadiumESPNID)
	}
	if m.TotalPlayTime == nil || *m.TotalPlayTime != 4800 {
		t.Fatalf("unexpected play time: %v", m.TotalPlayTime)
	}
	if m.LeagueUID != season.UID {
		t.Fatalf("match league uid mismatch: %s", m.LeagueUID)
	}

	if sinks.stadiums[0].City == nil || *sinks.stadiums[0].City != "Limerick" || sinks.stadiums[0].State != nil {
		t.Fatalf("unexpected stadium address: %+v", sinks.stadiums[0])
	}

	home := sinks.teamStats[0]
	if home.TeamESPNID != 10 || home.OpponentESPNID != 20 {
		t.Fatalf("unexpected home line: %+v", home)
	}
	if _, ok := home.Stats["carries"]; ok {
		t.Fatalf("null statistic must stay absent")
	}
	if home.Stats["tackles"] != 120 || home.Linescore60min != nil {
		t.Fatalf("unexpected home stats: %+v", home)
	}
	away := sinks.teamStats[1]
	if len(away.Stats) != 0 || away.Linescore60min == nil || *away.Linescore60min != 17 {
		t.Fatalf("unexpected away line: %+v", away)
	}

	if sinks.teams[0].LogoURL == nil || sinks.teams[1].LogoURL != nil {
		t.Fatalf("unexpected team logos: %+v", sinks.teams)
	}
	if sinks.standings[0].GroupID != 5 || sinks.standings[0].Stats["wins"] != 0 {
		t.Fatalf("unexpected standing: %+v", sinks.standings[0])
	}

	starter := sinks.matchStats[0]
	if !starter.IsFirstChoice || starter.PositionName != "scrum-half" || starter.Stats["tackles"] != 8 {
		t.Fatalf("unexpected starter line: %+v", starter)
	}
	bench := sinks.matchStats[1]
	if bench.IsFirstChoice || bench.PositionName != "replacement" || len(bench.Stats) != 0 {
		t.Fatalf("unexpected bench line: %+v", bench)
	}
	for _, membership := range sinks.memberships {
		if membership.TeamESPNID != 20 || membership.Season != 2024 {
			t.Fatalf("unexpected membership: %+v", membership)
		}
	}
	if sinks.players[1].Weight != nil || sinks.players[0].BirthPlace == nil {
		t.Fatalf("unexpected optional player fields: %+v", sinks.players)
	}
}

func TestIngestionService_Run_GamedayUsesCurrentSeason(t *testing.T) {
	t.Parallel()

	resolver := newFakeResolver(scenarioPages(false))
	mocks := newScenarioMocks(t)
	run := ingest.NewRun(scenarioLeague, 0, false)
	var sinks scenarioSinks
	mocks.expectAll(run, &sinks)

	service := NewIngestionService(resolver, mocks.repositories(), logging.NewNop())
	report, err := service.Run(context.Background(), run)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if report.Season != 2024 {
		t.Fatalf("expected season taken from league page, got %d", report.Season)
	}
	if resolver.fetched[leagueEndpoint("events_url_by_dates", scenarioLeague).String()] != 1 {
		t.Fatalf("expected gameday listing without dates to be fetched once")
	}
}

func TestIngestionService_Run_StopsOnUpstreamFailure(t *testing.T) {
	t.Parallel()

	pages := scenarioPages(true)
	delete(pages, espnBase+"/leagues/270559/seasons/2024/teams/20")
	resolver := newFakeResolver(pages)
	mocks := newScenarioMocks(t)
	run := ingest.NewRun(scenarioLeague, 2024, true)
	var sinks scenarioSinks
	mocks.leagues.On("Insert", mock.Anything, run, mock.Anything).Return(written("leagues", ingest.PolicyInsertOrIgnore, &sinks.leagues)).Once()
	mocks.stadiums.On("Insert", mock.Anything, run, mock.Anything).Return(written("stadiums", ingest.PolicyInsertOrIgnore, &sinks.stadiums)).Once()

	service := NewIngestionService(resolver, mocks.repositories(), logging.NewNop())
	report, err := service.Run(context.Background(), run)
	if !errors.Is(err, ingest.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if len(report.Writes) != 2 {
		t.Fatalf("expected tables written before the failure to be reported, got %d", len(report.Writes))
	}
	if report.Requests != run.Requests() || report.Requests == 0 {
		t.Fatalf("expected request count on failure, got %d", report.Requests)
	}
}

func TestIngestionService_Run_InvalidInput(t *testing.T) {
	t.Parallel()

	service := NewIngestionService(newFakeResolver(nil), Repositories{}, logging.NewNop())
	tests := []struct {
		name string
		run  *ingest.Run
	}{
		{name: "nil run"},
		{name: "missing league", run: ingest.NewRun(0, 2024, true)},
		{name: "negative season", run: ingest.NewRun(1, -1, true)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Run(context.Background(), tc.run)
			if !errors.Is(err, ingest.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
