package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
)

func newTestNormalizer(pages map[string]string) (*normalizer, *fakeResolver) {
	resolver := newFakeResolver(pages)
	return newNormalizer(resolver, ingest.NewRun(scenarioLeague, 2024, true), logging.NewNop()), resolver
}

func TestNormalizeMatches_DrawStoresAwayAsWinner(t *testing.T) {
	t.Parallel()

	n, _ := newTestNormalizer(map[string]string{
		homeRef + "/score": `{"value": 15}`,
		awayRef + "/score": `{"value": 15}`,
	})
	events := []eventPage{{
		Ref:  eventRef,
		ID:   FlexInt{Value: 100, Valid: true},
		Date: "2024-09-20T19:35Z",
		Competitions: []competition{{
			Competitors: []competitor{
				{ID: FlexInt{Value: 10, Valid: true}, HomeAway: "home", Score: &Ref{Ref: homeRef + "/score"}},
				{ID: FlexInt{Value: 20, Valid: true}, HomeAway: "away", Score: &Ref{Ref: awayRef + "/score"}},
			},
		}},
	}}

	got, err := n.normalizeMatches(context.Background(), events, "league-uid")
	if err != nil {
		t.Fatalf("normalize matches: %v", err)
	}
	m := got[0]
	if !m.IsDraw {
		t.Fatalf("expected draw flag")
	}
	if m.WinnerESPNID != 20 || m.LoserESPNID != 10 {
		t.Fatalf("expected away stored as winner, got winner=%d loser=%d", m.WinnerESPNID, m.LoserESPNID)
	}
	if m.WinnerScore != m.LoserScore || m.WinnerScore != 15 {
		t.Fatalf("expected equal scores, got %v/%v", m.WinnerScore, m.LoserScore)
	}
	if m.StadiumESPNID != nil || m.TotalPlayTime != nil {
		t.Fatalf("expected optional venue and clock to stay nil")
	}
}

func TestNormalizeMatches_MissingSideIsResolutionError(t *testing.T) {
	t.Parallel()

	n, _ := newTestNormalizer(nil)
	tests := []struct {
		name  string
		event eventPage
	}{
		{name: "no competitions", event: eventPage{Ref: eventRef, ID: FlexInt{Value: 100, Valid: true}}},
		{name: "no away", event: eventPage{Ref: eventRef, ID: FlexInt{Value: 100, Valid: true}, Competitions: []competition{{
			Competitors: []competitor{{ID: FlexInt{Value: 10, Valid: true}, HomeAway: "home"}},
		}}}},
		{name: "no id", event: eventPage{Ref: eventRef}},
		{name: "unknown side", event: eventPage{Ref: eventRef, ID: FlexInt{Value: 100, Valid: true}, Competitions: []competition{{
			Competitors: []competitor{
				{ID: FlexInt{Value: 10, Valid: true}, HomeAway: "home"},
				{ID: FlexInt{Value: 20, Valid: true}, HomeAway: "away"},
				{ID: FlexInt{Value: 30, Valid: true}, HomeAway: "neutral"},
			},
		}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := n.normalizeMatches(context.Background(), []eventPage{tc.event}, "league-uid")
			if !errors.Is(err, ingest.ErrResolution) {
				t.Fatalf("expected ErrResolution, got %v", err)
			}
		})
	}
}

func TestNormalizeMatches_StatusFetchFailureIsTerminal(t *testing.T) {
	t.Parallel()

	n, _ := newTestNormalizer(map[string]string{
		homeRef + "/score": `{"value": 17}`,
		awayRef + "/score": `{"value": 24}`,
	})
	events := []eventPage{{
		Ref:  eventRef,
		ID:   FlexInt{Value: 100, Valid: true},
		Date: "2024-09-20T19:35Z",
		Competitions: []competition{{
			Status: &Ref{Ref: competitionRef + "/status"},
			Competitors: []competitor{
				{ID: FlexInt{Value: 10, Valid: true}, HomeAway: "home", Score: &Ref{Ref: homeRef + "/score"}},
				{ID: FlexInt{Value: 20, Valid: true}, HomeAway: "away", Winner: true, Score: &Ref{Ref: awayRef + "/score"}},
			},
		}},
	}}

	got, err := n.normalizeMatches(context.Background(), events, "league-uid")
	if !errors.Is(err, ingest.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no matches on failure, got %d", len(got))
	}
}

func TestNormalizeTeamStats_ChildFetchFailureIsTerminal(t *testing.T) {
	t.Parallel()

	event := func(home competitor) eventPage {
		return eventPage{
			Ref: eventRef,
			ID:  FlexInt{Value: 100, Valid: true},
			Competitions: []competition{{Competitors: []competitor{
				home,
				{ID: FlexInt{Value: 20, Valid: true}, HomeAway: "away"},
			}}},
		}
	}
	home := competitor{ID: FlexInt{Value: 10, Valid: true}, HomeAway: "home"}
	withChildren := home
	withChildren.Linescores = &Ref{Ref: homeRef + "/linescores"}
	withChildren.Statistics = &Ref{Ref: homeRef + "/statistics"}

	tests := []struct {
		name  string
		pages map[string]string
	}{
		{name: "linescores unavailable", pages: map[string]string{homeRef + "/statistics": `{"splits": {"categories": []}}`}},
		{name: "statistics unavailable", pages: map[string]string{homeRef + "/linescores": `{"items": [{"period": 1, "value": 10}]}`}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, _ := newTestNormalizer(tc.pages)
			got, err := n.normalizeTeamStats(context.Background(), []eventPage{event(withChildren)})
			if !errors.Is(err, ingest.ErrTransport) {
				t.Fatalf("expected ErrTransport, got %v", err)
			}
			if got != nil {
				t.Fatalf("expected no team stats on failure, got %d", len(got))
			}
		})
	}

	t.Run("absent references stay optional", func(t *testing.T) {
		n, _ := newTestNormalizer(nil)
		got, err := n.normalizeTeamStats(context.Background(), []eventPage{event(home)})
		if err != nil {
			t.Fatalf("normalize team stats: %v", err)
		}
		if len(got) != 2 || got[0].Linescore1stHalf != nil || len(got[0].Stats) != 0 {
			t.Fatalf("unexpected team stats: %+v", got)
		}
	})
}

func TestNormalizePlayers_DeduplicatesAcrossRosters(t *testing.T) {
	t.Parallel()

	athlete := espnBase + "/athletes/1001"
	n, resolver := newTestNormalizer(map[string]string{
		athlete: `{"firstName": "Jamison", "lastName": "Gibson-Park", "weight": 221.1}`,
	})
	entry := rosterEntry{PlayerID: FlexInt{Value: 1001, Valid: true}, Athlete: Ref{Ref: athlete}}
	rosters := []rosterPage{
		{Ref: homeRef + "/roster", Entries: []rosterEntry{entry}},
		{Ref: awayRef + "/roster", Entries: []rosterEntry{entry}},
	}

	got, err := n.normalizePlayers(context.Background(), rosters)
	if err != nil {
		t.Fatalf("normalize players: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one player, got %d", len(got))
	}
	if resolver.fetched[athlete] != 1 {
		t.Fatalf("expected athlete fetched once, got %d", resolver.fetched[athlete])
	}
	if got[0].Weight == nil || math.Abs(*got[0].Weight-100) > 1e-9 {
		t.Fatalf("expected weight converted to kg, got %v", got[0].Weight)
	}
	if got[0].Height != nil || got[0].BirthDate != nil {
		t.Fatalf("expected absent fields to stay nil: %+v", got[0])
	}
}

func TestBuildPlayer_RequiresNames(t *testing.T) {
	t.Parallel()

	first := "Dan"
	_, err := buildPlayer(1002, athletePage{FirstName: &first})
	if !errors.Is(err, ingest.ErrResolution) {
		t.Fatalf("expected ErrResolution, got %v", err)
	}
}

func TestNormalizeAppearances(t *testing.T) {
	t.Parallel()

	roster := awayRef + "/roster"
	entry := func(playerID, jersey int64, position string) rosterEntry {
		return rosterEntry{
			PlayerID: FlexInt{Value: playerID, Valid: true},
			Jersey:   FlexInt{Value: jersey, Valid: true},
			Position: &Ref{Ref: espnBase + "/positions/" + position},
		}
	}

	t.Run("membership per season, stat per appearance", func(t *testing.T) {
		n, _ := newTestNormalizer(nil)
		rosters := []rosterPage{
			{Ref: roster, Entries: []rosterEntry{entry(1001, 9, "5"), entry(1002, 18, "20")}},
			{Ref: espnBase + "/leagues/270559/events/101/competitions/101/competitors/20/roster", Entries: []rosterEntry{entry(1001, 21, "6")}},
		}

		memberships, stats, err := n.normalizeAppearances(context.Background(), rosters, 2024)
		if err != nil {
			t.Fatalf("normalize appearances: %v", err)
		}
		if len(memberships) != 2 || len(stats) != 3 {
			t.Fatalf("unexpected counts: memberships=%d stats=%d", len(memberships), len(stats))
		}
		if stats[0].PlayerTeamUID != stats[2].PlayerTeamUID || stats[0].UID == stats[2].UID {
			t.Fatalf("expected one membership shared by two distinct appearances")
		}
		if stats[2].MatchESPNID != 101 || !stats[2].IsFirstChoice || stats[2].PositionName != "prop" {
			t.Fatalf("unexpected second appearance: %+v", stats[2])
		}
		if stats[1].IsFirstChoice {
			t.Fatalf("jersey 18 replacement must not be first choice")
		}
	})

	t.Run("unknown position code", func(t *testing.T) {
		n, _ := newTestNormalizer(nil)
		rosters := []rosterPage{{Ref: roster, Entries: []rosterEntry{entry(1001, 9, "99")}}}

		_, _, err := n.normalizeAppearances(context.Background(), rosters, 2024)
		if !errors.Is(err, ingest.ErrResolution) {
			t.Fatalf("expected ErrResolution, got %v", err)
		}
	})
}

func TestNormalizeStadiums_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	state := "Munster"
	event := func(name string) eventPage {
		v := &venue{ID: FlexInt{Value: 77, Valid: true}, FullName: name, Grass: true, Address: &address{State: &state}}
		return eventPage{Competitions: []competition{{Venue: v}}}
	}

	got := normalizeStadiums([]eventPage{event("Thomond Park"), event("Thomond Park (renamed)"), {}})
	if len(got) != 1 {
		t.Fatalf("expected one stadium, got %d", len(got))
	}
	if got[0].Name != "Thomond Park" {
		t.Fatalf("expected first occurrence kept, got %q", got[0].Name)
	}
	if got[0].City != nil || got[0].State == nil {
		t.Fatalf("expected city nil and state set: %+v", got[0])
	}
}

func TestIsFirstChoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		jersey, code int64
		want         bool
	}{
		{jersey: 1, code: 6, want: true},
		{jersey: 15, code: 20, want: true},
		{jersey: 16, code: 7, want: true},
		{jersey: 23, code: 20, want: false},
	}
	for _, tc := range tests {
		if got := isFirstChoice(tc.jersey, tc.code); got != tc.want {
			t.Fatalf("isFirstChoice(%d, %d) = %v, want %v", tc.jersey, tc.code, got, tc.want)
		}
	}
}
