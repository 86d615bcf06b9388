package usecase

import (
	"fmt"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/league"
	"github.com/riskibarqy/rugby-ingest/internal/platform/id"
)

// buildLeagueSeason combines the general league page with the league-season
// page and the calendar-checked bounds.
func buildLeagueSeason(leagueID int64, general leaguePage, season leagueSeasonPage, start, end time.Time) (league.Season, error) {
	year := season.Year
	if year == 0 {
		return league.Season{}, fmt.Errorf("%w: league %d season page has no year", ingest.ErrResolution, leagueID)
	}

	uid, err := id.UID(leagueID, year)
	if err != nil {
		return league.Season{}, err
	}

	out := league.Season{
		UID:          uid,
		ESPNID:       leagueID,
		Season:       year,
		Name:         general.Name,
		Abbreviation: general.Abbreviation,
		StartDate:    start,
		EndDate:      end,
		HasGroups:    season.Type.HasGroups,
		HasStandings: season.Type.HasStandings,
	}
	if err := out.Validate(); err != nil {
		return league.Season{}, fmt.Errorf("%w: %v", ingest.ErrResolution, err)
	}
	return out, nil
}

func parseCalendarDates(page calendarPage) ([]time.Time, error) {
	out := make([]time.Time, 0, len(page.EventDate.Dates))
	for _, raw := range page.EventDate.Dates {
		t, err := parseUpstreamTime(raw)
		if err != nil {
			return nil, fmt.Errorf("parse calendar date: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}
